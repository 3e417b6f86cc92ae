// Package storage exposes the object store that holds user uploads. The GDPR
// sweep and summary consume it via the ObjectStorage interface so tests can
// substitute fakes.
package storage

import "context"

// Segments a deletion sweep walks, in order.
var DeletionSegments = []string{"uploads", "scripts", "storyboards", "ratings"}

// FileInfo describes one stored object inside a segment.
type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// ObjectStorage lists and deletes files by logical segment and filename.
type ObjectStorage interface {
	// ListFiles returns up to maxKeys files stored under the segment.
	ListFiles(ctx context.Context, segment string, maxKeys int32) ([]FileInfo, error)
	// DeleteFile removes a single file from the segment.
	DeleteFile(ctx context.Context, segment, filename string) error
}
