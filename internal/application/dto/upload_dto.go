package dto

// UploadResponse resultado de una subida de imagen.
type UploadResponse struct {
	URL      string `json:"url"`
	Storage  string `json:"storage"`
	Message  string `json:"message"`
	Type     string `json:"type,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}
