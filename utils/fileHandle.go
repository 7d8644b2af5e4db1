package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxImageSize    = 2 << 20
	MaxDocumentSize = 20 << 20
)

// FileError is a user-facing upload rejection
type FileError struct {
	Message string
}

func (e *FileError) Error() string { return e.Message }

var (
	ErrImageTooLarge    = &FileError{Message: "Image must be 2MB or smaller!"}
	ErrNotAnImage       = &FileError{Message: "Only image files are allowed!"}
	ErrDocumentTooLarge = &FileError{Message: "Document must be 20MB or smaller!"}
	ErrDocumentType     = &FileError{Message: "Only pdf, doc, docx, xls, xlsx, ppt, pptx or txt files are allowed!"}
)

var documentExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".txt": true,
}

// UploadedFile is an upload held in memory
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ValidateImage checks size before type. An empty or generic declared type is
// replaced by the type sniffed from the bytes.
func ValidateImage(name, declaredType string, data []byte) (UploadedFile, error) {
	if len(data) > MaxImageSize {
		return UploadedFile{}, ErrImageTooLarge
	}

	contentType := strings.TrimSpace(declaredType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}
	if !strings.HasPrefix(contentType, "image/") {
		return UploadedFile{}, ErrNotAnImage
	}

	return UploadedFile{Name: name, ContentType: contentType, Data: data}, nil
}

// ValidateImageFile reads a multipart image after rejecting oversized headers
func ValidateImageFile(file *multipart.FileHeader) (UploadedFile, error) {
	if file.Size > MaxImageSize {
		return UploadedFile{}, ErrImageTooLarge
	}
	data, err := readUploadedFile(file, MaxImageSize)
	if err != nil {
		return UploadedFile{}, err
	}
	return ValidateImage(file.Filename, file.Header.Get("Content-Type"), data)
}

// ValidateDocumentName checks the extension allow-list
func ValidateDocumentName(name string) error {
	if !documentExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrDocumentType
	}
	return nil
}

// ValidateDocumentFile reads a multipart document resource
func ValidateDocumentFile(file *multipart.FileHeader) (UploadedFile, error) {
	if err := ValidateDocumentName(file.Filename); err != nil {
		return UploadedFile{}, err
	}
	if file.Size > MaxDocumentSize {
		return UploadedFile{}, ErrDocumentTooLarge
	}
	data, err := readUploadedFile(file, MaxDocumentSize)
	if err != nil {
		return UploadedFile{}, err
	}
	if len(data) > MaxDocumentSize {
		return UploadedFile{}, ErrDocumentTooLarge
	}
	return UploadedFile{
		Name:        file.Filename,
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

// readUploadedFile reads at most limit+1 bytes so callers can spot overflow
func readUploadedFile(file *multipart.FileHeader, limit int64) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
