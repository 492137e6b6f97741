//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/cochonut/cmd"
	"github.com/jsphweid/cochonut/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	indexDir, err := os.MkdirTemp("", "cochonut-e2e")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("INDEX_PATH", indexDir)
	os.Setenv("MEDIA_PATH", "../testdata")

	if err := cmd.Index(0); err != nil {
		panic(err.Error())
	}
	if err := cmd.LoadServeFiles(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(indexDir)
	os.Exit(exitVal)
}

func createSearchReqBody(notes model.Notes) io.Reader {
	sr := model.SearchRequestBody{Chords: []model.Notes{notes}}
	data, err := json.Marshal(sr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func doSearch(t *testing.T, notes model.Notes) []model.SearchResult {
	req := httptest.NewRequest(http.MethodPost, "/search", createSearchReqBody(notes))
	w := httptest.NewRecorder()
	cmd.HandleSearch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var res []model.SearchResult
	if err := json.Unmarshal(respBody, &res); err != nil {
		panic(err.Error())
	}
	return res
}

func TestOpeningChordE2E(t *testing.T) {
	assert.Equal(t, []model.SearchResult{{
		FileId:   0,
		File:     "chorale.musicxml",
		Offset:   0,
		Quarters: 0,
	}}, doSearch(t, model.Notes{48, 72, 76, 79}))
}

func TestSecondMeasureE2E(t *testing.T) {
	assert.Equal(t, []model.SearchResult{{
		FileId:   0,
		File:     "chorale.musicxml",
		Offset:   8,
		Quarters: 4,
	}}, doSearch(t, model.Notes{76, 45, 72}))
}

func TestPassingNoteE2E(t *testing.T) {
	assert.Equal(t, []model.SearchResult{{
		FileId:   0,
		File:     "chorale.musicxml",
		Offset:   2,
		Quarters: 1,
	}}, doSearch(t, model.Notes{48, 71}))
}
