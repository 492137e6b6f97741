package model

type SearchResult struct {
	FileId   uint32  `json:"file_id"`
	File     string  `json:"file"`
	Offset   uint32  `json:"offset"`
	Quarters float32 `json:"quarters"`
}

type SearchRequestBody struct {
	Chords []Notes `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
