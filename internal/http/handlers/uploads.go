package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

type fileReadErrorKind string

const (
	fileReadErrMissing     fileReadErrorKind = "missing"
	fileReadErrReadFailed  fileReadErrorKind = "read_failed"
	fileReadErrTooLarge    fileReadErrorKind = "too_large"
	fileReadErrInvalidType fileReadErrorKind = "invalid_type"
)

type fileReadError struct {
	Kind    fileReadErrorKind
	Message string
	Err     error
}

// readWorkbookBytes pulls the uploaded workbook out of the multipart form,
// enforcing the configured size cap. Type checking is a cheap filename/
// content-type gate; the decoder rejects anything that is not really a
// workbook.
func readWorkbookBytes(r *http.Request, field string, maxBytes int64) ([]byte, *fileReadError) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, &fileReadError{Kind: fileReadErrMissing, Message: "File is required", Err: err}
	}
	defer file.Close()

	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	data, readErr := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if readErr != nil {
		return nil, &fileReadError{Kind: fileReadErrReadFailed, Message: "Failed to read file", Err: readErr}
	}
	if int64(len(data)) > maxBytes {
		maxSizeMB := maxBytes / (1024 * 1024)
		if maxSizeMB <= 0 {
			maxSizeMB = 1
		}
		return nil, &fileReadError{Kind: fileReadErrTooLarge, Message: fmt.Sprintf("File size must be less than %dMB.", maxSizeMB)}
	}

	name := strings.ToLower(header.Filename)
	contentType := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	if !strings.HasSuffix(name, ".xlsx") && !strings.Contains(contentType, "spreadsheet") && contentType != "application/octet-stream" && contentType != "" {
		return nil, &fileReadError{Kind: fileReadErrInvalidType, Message: "Invalid file type. Please upload an .xlsx export."}
	}

	return data, nil
}
