package registry

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copydesk/copydesk/pkg/mocks"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := newTestRegistry()
	store := new(mocks.MockContentStateStore)

	reg.RegisterContentStore("post", store)

	got, err := reg.ContentStore("post")
	require.NoError(t, err)
	assert.Same(t, store, got)
}

func TestRegistry_UnknownContentType(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.ContentStore("video")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "video")
}

func TestRegistry_ReplaceStore(t *testing.T) {
	reg := newTestRegistry()
	first := new(mocks.MockContentStateStore)
	second := new(mocks.MockContentStateStore)

	reg.RegisterContentStore("post", first)
	reg.RegisterContentStore("post", second)

	got, err := reg.ContentStore("post")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRegistry_ContentTypesSorted(t *testing.T) {
	reg := newTestRegistry()
	reg.RegisterContentStore("post", new(mocks.MockContentStateStore))
	reg.RegisterContentStore("article", new(mocks.MockContentStateStore))
	reg.RegisterContentStore("page", new(mocks.MockContentStateStore))

	assert.Equal(t, []string{"article", "page", "post"}, reg.ContentTypes())
}

func TestRegistry_HealthCheck(t *testing.T) {
	reg := newTestRegistry()

	message, healthy := reg.HealthCheck()
	assert.False(t, healthy)
	assert.Contains(t, message, "No content stores")

	reg.RegisterContentStore("post", new(mocks.MockContentStateStore))

	message, healthy = reg.HealthCheck()
	assert.True(t, healthy)
	assert.Contains(t, message, "1 content stores")
}
