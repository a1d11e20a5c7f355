package utils

import (
	"bytes"
	"mime/multipart"
	"testing"

	"workshop-system/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func pngReader() *bytes.Reader {
	return bytes.NewReader(pngMagic)
}

func TestValidateFile_AcceptsExactSizeLimit(t *testing.T) {
	header := &multipart.FileHeader{Filename: "photo.png", Size: config.MaxJobPhotoSize}

	err := ValidateFile(header, pngReader(), "job_photo")
	assert.NoError(t, err)
}

func TestValidateFile_RejectsOneByteOverLimit(t *testing.T) {
	header := &multipart.FileHeader{Filename: "photo.png", Size: config.MaxJobPhotoSize + 1}

	err := ValidateFile(header, pngReader(), "job_photo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestValidateFile_RejectsNonImage(t *testing.T) {
	payload := []byte("%PDF-1.4 not a photo")
	header := &multipart.FileHeader{Filename: "doc.pdf", Size: int64(len(payload))}

	err := ValidateFile(header, bytes.NewReader(payload), "job_photo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestValidateFile_UnknownContext(t *testing.T) {
	header := &multipart.FileHeader{Filename: "photo.png", Size: 10}

	err := ValidateFile(header, pngReader(), "nope")
	assert.Error(t, err)
}
