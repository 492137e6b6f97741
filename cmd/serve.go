package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/cochonut/chunk"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/parser"
	"github.com/jsphweid/cochonut/sample"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	allChunks        []model.ChunkOverview
	fileNumToName    model.FileNumToScorePath
	fileNumToDivisor model.FileNumToDivisor
)

var port int

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord search",
	Long:  `Serves chord search over the index in INDEX_PATH and score excerpts from MEDIA_PATH.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(); err != nil {
			return err
		}
		return serve(port)
	},
}

// LoadServeFiles reads the binaries written by Index.
func LoadServeFiles() error {
	indexDir := constants.GetIndexDir()
	var err error
	allChunks, err = util.ReadBinary[[]model.ChunkOverview](filepath.Join(indexDir, constants.AllChunksFilename))
	if err != nil {
		return err
	}
	fileNumToName, err = util.ReadBinary[model.FileNumToScorePath](filepath.Join(indexDir, constants.FileNumToNameFilename))
	if err != nil {
		return err
	}
	fileNumToDivisor, err = util.ReadBinary[model.FileNumToDivisor](filepath.Join(indexDir, constants.FileNumToDivisorFilename))
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %v chunks over %v scores", len(allChunks), len(fileNumToName))
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func toSearchResults(matches []model.RawResult) []model.SearchResult {
	res := make([]model.SearchResult, 0, len(matches))
	for _, rr := range matches {
		r := model.SearchResult{FileId: rr.FileId, File: fileNumToName[rr.FileId], Offset: rr.Offset}
		if divisor := fileNumToDivisor[rr.FileId]; divisor > 0 {
			r.Quarters = float32(rr.Offset) / float32(divisor)
		}
		res = append(res, r)
	}
	return res
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	if len(input.Chords) != 1 {
		writeError(w, http.StatusBadRequest, "Length of chords can only be 1 for now...")
		return
	}

	matches, err := chunk.FindChords(constants.GetIndexDir(), allChunks, input.Chords[0])
	if err != nil {
		logrus.Errorf("Search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toSearchResults(matches))
}

func HandleSample(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileId, err := strconv.ParseUint(vars["fileId"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad file id")
		return
	}
	offset, err := strconv.Atoi(vars["offset"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad offset")
		return
	}
	name, ok := fileNumToName[uint32(fileId)]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no score with id %v", fileId))
		return
	}

	score, err := parser.ParseFile(filepath.Join(constants.GetMediaDir(), name))
	if err != nil {
		logrus.Errorf("Could not parse %v: %v", name, err)
		writeError(w, http.StatusInternalServerError, "could not read score")
		return
	}
	s, err := sample.Create(score, offset, constants.SampleOnsets)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	if _, err := s.WriteTo(w); err != nil {
		logrus.Errorf("Could not write sample of %v: %v", name, err)
	}
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/sample/{fileId:[0-9]+}/{offset:[0-9]+}", HandleSample).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(port int) error {
	addr := fmt.Sprintf(":%v", port)
	logrus.Infof("Listening on %v", addr)
	return errors.Wrap(http.ListenAndServe(addr, NewRouter()), "server stopped")
}
