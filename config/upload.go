package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeBytes     int64
	PathPrefix       string
}

// MaxJobPhotoSize is the hard cap on a single job photo. A file of exactly
// this size is accepted; one byte more is rejected before any storage write.
const MaxJobPhotoSize int64 = 5 * 1024 * 1024

var UploadContexts = map[string]UploadConfig{
	"job_photo": {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/jpg"},
		MaxSizeBytes:     MaxJobPhotoSize,
		PathPrefix:       "jobs",
	},
}
