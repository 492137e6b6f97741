package file

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/cochonut/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileNumMap(t *testing.T) {
	media := filepath.Join("srv", "media")
	got, err := CreateFileNumMap(media, []string{
		filepath.Join(media, "a.musicxml"),
		filepath.Join(media, "b", "c.xml"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.FileNumToScorePath{0: "a.musicxml", 1: "b/c.xml"}, got)
}

func TestCreateFileNumMapRejectsBadPaths(t *testing.T) {
	media := filepath.Join("srv", "media")
	for _, path := range []string{
		filepath.Join("srv", "other", "a.musicxml"),
		filepath.Join(media, "a.mid"),
	} {
		_, err := CreateFileNumMap(media, []string{path})
		assert.Error(t, err, path)
	}
}
