// Package domain defines the archive ports and types
package domain

import "context"

// Slot is one allocated archive location. FolderName and FileBase share the
// YYYYMMDD-NN pattern; NN is two-digit, 1-based, and densely allocated per
// date
type Slot struct {
	FolderName string
	FolderPath string
	FileBase   string
}

// Pair is one artifact pair ready to persist
type Pair struct {
	SpecJSON []byte
	Code     string
}

// WriterPort persists an artifact pair into a freshly allocated slot
type WriterPort interface {
	Write(ctx context.Context, pair Pair) (Slot, error)
}
