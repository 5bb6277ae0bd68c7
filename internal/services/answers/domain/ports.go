// Package domain defines the question answering ports
package domain

import "context"

// AnswerPort answers a free-text question from the fixed QA document
type AnswerPort interface {
	Answer(ctx context.Context, question string) (string, error)
}
