package types

import "time"

// UploadURLResponse presigned PUT target; the client uploads the image bytes to
// UploadURL and then passes StorageID to CreatePost.
type UploadURLResponse struct {
	UploadURL string    `json:"upload_url"`
	StorageID string    `json:"storage_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
