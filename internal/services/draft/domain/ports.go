// Package domain defines the transformation ports and types
package domain

import "context"

// Artifact is one generated specification/code pair
type Artifact struct {
	// Spec is the decoded specification object
	Spec map[string]any

	// SpecRaw is the spec exactly as the producer emitted it
	SpecRaw string

	// Code is the generated program text
	Code string
}

// TransformPort turns a document into an artifact pair
type TransformPort interface {
	Transform(ctx context.Context, title, bodyText string) (Artifact, error)
}
