package internal

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
