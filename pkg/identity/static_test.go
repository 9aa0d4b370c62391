package identity

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_GetRoleNames(t *testing.T) {
	ctx := context.Background()
	resolver := NewStaticResolver(map[string][]string{
		"alice": {"Writer", "Editor"},
	})

	names, err := resolver.GetRoleNames(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Writer", "Editor"}, names)
}

func TestStaticResolver_UnknownActorGetsEmptySet(t *testing.T) {
	ctx := context.Background()
	resolver := NewStaticResolver(nil)

	names, err := resolver.GetRoleNames(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStaticResolver_Assign(t *testing.T) {
	ctx := context.Background()
	resolver := NewStaticResolver(nil)

	resolver.Assign("bob", "Approver")

	names, err := resolver.GetRoleNames(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"Approver"}, names)

	resolver.Assign("bob", "Writer")

	names, err = resolver.GetRoleNames(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"Writer"}, names)
}

func TestStaticResolver_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	resolver := NewStaticResolver(map[string][]string{"alice": {"Writer"}})

	names, err := resolver.GetRoleNames(ctx, "alice")
	require.NoError(t, err)

	names[0] = "SysAdmin"

	again, err := resolver.GetRoleNames(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Writer"}, again)
}

func TestNewFileResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alice": ["Writer"], "bob": ["Editor", "Approver"]}`), 0o644))

	resolver, err := NewFileResolver(path)
	require.NoError(t, err)

	names, err := resolver.GetRoleNames(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"Editor", "Approver"}, names)
}

func TestNewFileResolver_MissingFile(t *testing.T) {
	_, err := NewFileResolver(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestNewFileResolver_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileResolver(path)

	assert.Error(t, err)
}
