package valueobject

// SourceFile is a raw upload as received from the client: the byte
// payload plus the filename and content type the client claimed. Values
// are immutable once constructed; WithContentType returns a corrected
// copy rather than mutating in place.
type SourceFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f SourceFile) Size() int64 {
	return int64(len(f.Data))
}

// WithContentType returns a new SourceFile carrying the authoritative
// content type, sharing the original byte payload.
func (f SourceFile) WithContentType(contentType string) SourceFile {
	return SourceFile{
		Name:        f.Name,
		ContentType: contentType,
		Data:        f.Data,
	}
}

// ProcessedFile is the payload ready for storage, after any resize and
// re-encode. ContentType is always one of the raster image types.
type ProcessedFile struct {
	ContentType string
	Data        []byte
}

func (f ProcessedFile) Size() int64 {
	return int64(len(f.Data))
}
