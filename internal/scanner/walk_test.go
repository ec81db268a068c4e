package scanner

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkBottomUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, p := range []string{
		"/r/b.txt",
		"/r/a.txt",
		"/r/z/1.txt",
		"/r/m/deep/x.txt",
		"/r/m/y.txt",
	} {
		writeFile(t, fs, p, 1)
	}
	require.NoError(t, fs.MkdirAll("/r/empty", 0755))

	var visited []string
	err := walkBottomUp(fs, "/r", func(path string) error {
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/r/m/deep/x.txt",
		"/r/m/y.txt",
		"/r/z/1.txt",
		"/r/a.txt",
		"/r/b.txt",
	}, visited)
}

func TestWalkBottomUp_StopsOnVisitError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/r/a.txt", 1)
	writeFile(t, fs, "/r/b.txt", 1)

	stop := errors.New("stop")
	var visited []string
	err := walkBottomUp(fs, "/r", func(path string) error {
		visited = append(visited, path)
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"/r/a.txt"}, visited)
}

func TestWalkBottomUp_MissingDir(t *testing.T) {
	err := walkBottomUp(afero.NewMemMapFs(), "/nope", func(string) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory /nope")
}
