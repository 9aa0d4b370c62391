package cmd

import (
	"fmt"
	"strings"

	"github.com/copydesk/copydesk/pkg/persistence/file"
	"github.com/copydesk/copydesk/pkg/persistence/redis"
	"github.com/copydesk/copydesk/pkg/registry"
)

// RegisterContentStores builds one content state store per content-type tag
// and registers it. A redis:// URL selects the Redis store; anything else is
// treated as a file-store root directory.
func RegisterContentStores(reg *registry.Registry, storeURL string, contentTypes []string) error {
	for _, contentType := range contentTypes {
		contentType = strings.TrimSpace(contentType)
		if contentType == "" {
			continue
		}

		if strings.HasPrefix(storeURL, "redis://") {
			store, err := redis.NewContentStateStore(storeURL, contentType)
			if err != nil {
				return fmt.Errorf("failed to create redis content store for %s: %w", contentType, err)
			}

			reg.RegisterContentStore(contentType, store)

			continue
		}

		root := strings.Replace(storeURL, "file://", "", 1)
		reg.RegisterContentStore(contentType, file.NewContentStateStore(root, contentType))
	}

	return nil
}
