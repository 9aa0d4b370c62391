// Package cmd provides shared constructors for command entrypoints.
package cmd

import (
	"strings"

	"github.com/copydesk/copydesk/pkg/persistence"
	"github.com/copydesk/copydesk/pkg/persistence/file"
)

// NewPersistence creates the definition store for the given database URL.
// Only file-backed persistence ships today; the URL scheme selects the
// provider so database backends can slot in without touching callers.
func NewPersistence(databaseURL string) persistence.Persistence {
	switch parseProvider(databaseURL) {
	default:
		return file.NewPersistence(databaseURL)
	}
}

func parseProvider(databaseURL string) string {
	parts := strings.SplitN(databaseURL, "://", 2)
	if len(parts) < 2 {
		return "file"
	}

	return parts[0]
}
