package api

const (
	msgUploaded     = "Zip file successfully uploaded to Blob Storage."
	msgEmptyBody    = "Invalid input. The request body is null or empty."
	msgInvalidInput = "Invalid input. The request body could not be processed."
)

// Health
type healthResp struct {
	Status string `json:"status"`
}
