package constants

import "strings"

// Source formats for the format field in ParseJob.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
	TXT   = "TXT"
)

// FileTypes holds the allowed file types for the format field in ParseJob.
var FileTypes = []string{PDF, IMAGE, TXT}

// AllowedExtensions holds the default allowed file extensions for roster sheet ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"heic": {},
	"heif": {},
	"txt":  {},
}

// IsHEICExt reports whether a normalized extension needs HEIC conversion
// before OCR.
func IsHEICExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "heic", "heif":
		return true
	}
	return false
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a source format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff", "heic", "heif":
		return IMAGE
	case "txt":
		return TXT
	default:
		return ""
	}
}
