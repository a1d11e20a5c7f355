package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"workshop-system/config"
)

func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("unknown upload context: %s", contextName)
	}

	if rules.MaxSizeBytes > 0 && fileHeader.Size > rules.MaxSizeBytes {
		return fmt.Errorf("file size (%d KB) exceeds the %d MB limit",
			fileHeader.Size/1024, rules.MaxSizeBytes/(1024*1024))
	}

	buffer := make([]byte, 512)
	_, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("could not read file to detect its type")
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("could not rewind file")
	}

	mimeType := http.DetectContentType(buffer)
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return fmt.Errorf("file type not allowed: %s", mimeType)
	}

	return nil
}
