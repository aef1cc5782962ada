package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

// UploadContexts holds the per-purpose rules checked before a file is stored.
var UploadContexts = map[string]UploadConfig{
	"document": {
		AllowedMimeTypes: []string{
			"application/pdf",
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"application/zip",          // xlsx, docx, pptx
			"application/octet-stream", // xls, hwp
			"text/plain; charset=utf-8",
			"text/csv; charset=utf-8",
		},
		MaxSizeMB:  50,
		PathPrefix: "documents",
	},
	"work_order_attachment": {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "application/pdf"},
		MaxSizeMB:        20,
		PathPrefix:       "work-orders",
	},
}
