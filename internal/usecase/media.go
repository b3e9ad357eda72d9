package usecase

import "io"

// FileUpload is an uploaded file as received by the delivery layer.
type FileUpload struct {
	Filename string
	Content  io.Reader
}
