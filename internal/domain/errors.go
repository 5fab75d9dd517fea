package domain

import "errors"

var (
	ErrInvalidBatch        = errors.New("input cannot be interpreted as an invoice batch")
	ErrUnreadableDocument  = errors.New("document could not be read")
	ErrNoDocuments         = errors.New("no documents found in input directory")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
)
