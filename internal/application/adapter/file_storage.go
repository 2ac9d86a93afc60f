// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// FileStorage defines the interface for attachment storage. References are
// opaque strings; the application never interprets their content.
type FileStorage interface {
	// Store persists the bytes under a generated name, keeping the original
	// file extension, and returns the reference for the stored file.
	Store(ctx context.Context, data []byte, originalFilename string) (string, error)

	// Delete removes a stored file. A missing file is not an error.
	Delete(ctx context.Context, reference string) error
}
