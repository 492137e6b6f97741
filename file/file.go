package file

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
)

// relativePath keys a score by its slash-separated path under mediaDir,
// which is also the key its metadata is stored under.
func relativePath(mediaDir, path string) (string, error) {
	rel, err := filepath.Rel(mediaDir, path)
	if err != nil {
		return "", errors.Wrapf(err, "%v is not under %v", path, mediaDir)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", errors.Errorf("%v is outside %v", path, mediaDir)
	}
	return rel, nil
}

// CreateFileNumMap numbers scores in the order given. Only MusicXML paths
// under mediaDir are accepted.
func CreateFileNumMap(mediaDir string, paths []string) (model.FileNumToScorePath, error) {
	res := make(model.FileNumToScorePath)
	for i, v := range paths {
		if !util.IsScorePath(v) {
			return nil, errors.Errorf("%v is not a MusicXML file", v)
		}
		rel, err := relativePath(mediaDir, v)
		if err != nil {
			return nil, err
		}
		res[uint32(i)] = rel
	}
	return res, nil
}
