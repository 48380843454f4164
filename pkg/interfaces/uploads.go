package interfaces

import (
	"context"
	"io"
)

// UploadPolicy captures the per-folder constraints enforced by the host's
// upload service. The site module documents the policy it expects but never
// implements storage itself.
type UploadPolicy struct {
	Folder       string
	MaxSizeBytes int64
	ContentTypes []string
}

// Uploader stores a file and returns its public URL. Implementations own
// size/type validation per folder and should fail with a descriptive error
// when the policy is violated.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}
