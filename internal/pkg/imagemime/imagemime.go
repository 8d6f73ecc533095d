// Package imagemime resolves the authoritative content type of an
// uploaded image, correcting missing or unreliable client metadata.
package imagemime

import (
	"path"
	"strings"
)

const (
	TypeJPEG = "image/jpeg"
	TypePNG  = "image/png"
	TypeGIF  = "image/gif"
	TypeWebP = "image/webp"

	TypeOctetStream = "application/octet-stream"
)

var extensionTypes = map[string]string{
	"jpg":  TypeJPEG,
	"jpeg": TypeJPEG,
	"png":  TypePNG,
	"gif":  TypeGIF,
	"webp": TypeWebP,
}

// IsRaster reports whether contentType is one of the allow-listed
// raster image types.
func IsRaster(contentType string) bool {
	switch contentType {
	case TypeJPEG, TypePNG, TypeGIF, TypeWebP:
		return true
	}
	return false
}

// Resolve returns the authoritative content type for a file. A claimed
// raster type passes through unchanged; anything else (missing,
// application/octet-stream, or a non-image type) is inferred from the
// filename extension. Unknown extensions fall back to image/jpeg rather
// than failing, so Resolve always produces a value. Note the fallback
// can mislabel non-JPEG bytes; the processor re-wraps rather than
// verifies, so a mislabeled payload is stored as claimed.
func Resolve(claimed, filename string) string {
	if IsRaster(claimed) {
		return claimed
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return TypeJPEG
}
