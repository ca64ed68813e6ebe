package library

import (
	"context"
)

var defaultVideoExtensions = []string{".mp4", ".avi", ".mkv", ".m4v", ".iso", ".ts", ".m2ts"}

// Library finds video files and parses their names
type Library interface {
	Scan(ctx context.Context) ([]ParsedFile, error)
}
