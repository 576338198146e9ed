package domain

// PhotoVariant is one size/format pair of the photo catalog.
type PhotoVariant struct {
	Size   string
	Format string
}

// Tag returns the published representation, e.g. "web:png".
func (v PhotoVariant) Tag() string {
	return v.Size + ":" + v.Format
}

// FileName returns the on-disk file name for a record, e.g. "42-web.png".
func (v PhotoVariant) FileName(recordID string) string {
	return recordID + "-" + v.Size + "." + v.Format
}

// PhotoCatalog is the fixed set of photo variants probed for every record of
// a photo-carrying sub-spec. The order here is the order tags appear in the
// published photos sequence.
var PhotoCatalog = []PhotoVariant{
	{Size: "web", Format: "svg"},
	{Size: "web", Format: "png"},
	{Size: "web", Format: "webp"},
	{Size: "web", Format: "jpg"},
	{Size: "sm", Format: "png"},
	{Size: "sm", Format: "webp"},
	{Size: "twitter", Format: "jpg"},
}
