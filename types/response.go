package types

type UploadResponse struct {
	NumPages int    `json:"numPages"`
	Text     string `json:"text"`
	Message  string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
