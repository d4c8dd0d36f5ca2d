package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrContractNotFound    = errors.New("no contract found for provider")
	ErrDuplicateContract   = errors.New("contract already exists for provider")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed    = errors.New("rate card extraction failed")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrEmptyBatch          = errors.New("batch contains no rows")
)
