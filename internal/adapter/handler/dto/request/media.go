package request

// UploadImage is the JSON body for non-multipart uploads: an inline data URI
// or a reference to an already-hosted image. Exactly one of DataURI and URL
// must be set.
type UploadImage struct {
	DataURI string `json:"data_uri"`
	URL     string `json:"url"`
	Folder  string `json:"folder"`
	Variant string `json:"variant"`
}

// DeleteImage removes a previously stored asset by its public URL.
type DeleteImage struct {
	URL string `json:"url" binding:"required"`
}
