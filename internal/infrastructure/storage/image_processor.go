package storage

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"

	// Decoders for the allow-listed raster types.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/imagemime"
)

// Files at or below this size are stored as-is; only larger payloads
// are decoded and re-encoded.
const compressThreshold = 1 << 20

type ImageProcessorImpl struct {
	maxWidth int
	quality  int
}

// NewImageProcessor builds a processor that fits oversized images into
// a maxWidth square and re-encodes them as JPEG. quality is in the 0..1
// range.
func NewImageProcessor(maxWidth int, quality float64) *ImageProcessorImpl {
	return &ImageProcessorImpl{
		maxWidth: maxWidth,
		quality:  int(quality * 100),
	}
}

// Process corrects the content type and, for payloads over the
// threshold, downsamples and re-encodes. It never fails: decode or
// encode errors resolve to the type-corrected original so a compression
// problem cannot block an upload. A non-raster content type is forced
// to image/jpeg without re-encoding, which stores the original bytes
// under the forced type even when they are not JPEG.
func (p *ImageProcessorImpl) Process(file valueobject.SourceFile) valueobject.ProcessedFile {
	contentType := file.ContentType
	if !imagemime.IsRaster(contentType) {
		contentType = imagemime.TypeJPEG
	}

	passthrough := valueobject.ProcessedFile{
		ContentType: contentType,
		Data:        file.Data,
	}

	if file.Size() <= compressThreshold {
		return passthrough
	}

	img, _, err := image.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return passthrough
	}

	// Fit only shrinks: images already inside the bound come back
	// unchanged, so the scale factor is effectively clamped to <= 1.
	img = imaging.Fit(img, p.maxWidth, p.maxWidth, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return passthrough
	}

	if int64(buf.Len()) >= file.Size() {
		return passthrough
	}

	return valueobject.ProcessedFile{
		ContentType: imagemime.TypeJPEG,
		Data:        buf.Bytes(),
	}
}
