package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/codereq/internal/adapters/cas"
	"go.trai.ch/codereq/internal/core/domain"
)

func sampleRequest() *domain.CodeRequest {
	req := domain.NewCodeRequest()
	req.AppendMarkdown("Plot a sine.")
	req.AppendCode("import numpy as np\nprint(np.sin(1))", []domain.Dependency{
		domain.NewDependency("numpy", "1.26.4", "https://pypi.org/project/numpy"),
	})
	return req
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	id, err := store.Put(root, sampleRequest())
	require.NoError(t, err)
	assert.True(t, cas.IsID(id))
	assert.FileExists(t, filepath.Join(root, domain.DefaultStorePath(), id+".json"))

	got, err := store.Get(root, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	req, ok := got.(*domain.CodeRequest)
	require.True(t, ok)
	assert.True(t, sampleRequest().Equal(req))
	assert.Equal(t, sampleRequest().Dependencies(), req.Dependencies())
}

func TestStore_ContentAddressed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	first, err := store.Put(root, sampleRequest())
	require.NoError(t, err)
	second, err := store.Put(root, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other := sampleRequest()
	other.AppendMarkdown("More.")
	third, err := store.Put(root, other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	exec, err := store.Put(root, domain.NewExecutionRequest(sampleRequest()))
	require.NoError(t, err)
	assert.NotEqual(t, first, exec, "the variant is part of the content")

	got, err := store.Get(root, exec)
	require.NoError(t, err)
	assert.IsType(t, &domain.ExecutionRequest{}, got)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	for _, id := range []string{"0123456789abcdef", "not-an-id", "../../etc/passwd", ""} {
		got, err := store.Get(root, id)
		require.NoError(t, err, id)
		assert.Nil(t, got, id)
	}
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	id, err := store.Put(root, sampleRequest())
	require.NoError(t, err)

	path := filepath.Join(root, domain.DefaultStorePath(), id+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	_, err = store.Get(root, id)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestStore_GetNonRequest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	id := "00000000000000aa"
	dir := filepath.Join(root, domain.DefaultStorePath())
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	record := `{"class": "MarkdownCell", "contents": "x"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(record), domain.FilePerm))

	_, err := store.Get(root, id)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnexpectedVariant.Error())
}

func TestStore_PutUnwritable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, domain.CodeReqDirName)
	require.NoError(t, os.WriteFile(blocker, []byte("file"), domain.FilePerm))

	_, err := cas.NewStore().Put(root, sampleRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}

func TestIsID(t *testing.T) {
	t.Parallel()

	assert.True(t, cas.IsID("0123456789abcdef"))
	assert.False(t, cas.IsID("0123456789abcde"))
	assert.False(t, cas.IsID("0123456789abcdeg"))
	assert.False(t, cas.IsID("request.json"))
}
