package models

// UploadResult is returned by the admin upload endpoint after the image host
// accepted the bytes.
type UploadResult struct {
	URL       string `json:"url"`
	DeleteURL string `json:"delete_url,omitempty"`
	ImageID   string `json:"image_id,omitempty"`
}

// StoryUploadResult is returned by the user story upload endpoint; the path
// is relative to the public uploads root.
type StoryUploadResult struct {
	Path string `json:"path"`
}

// Preferences is the cookie-backed visitor preference blob. Validation is a
// straight passthrough; nothing is persisted server-side.
type Preferences struct {
	Theme      string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Currency   string `json:"currency" validate:"omitempty,oneof=USD EUR GBP INR"`
	Newsletter bool   `json:"newsletter"`
}
