package domain

// Zone is a courier distance/remoteness pricing tier, ordered A (cheapest,
// same metro) through E (extreme remote).
type Zone string

const (
	ZoneA Zone = "A"
	ZoneB Zone = "B"
	ZoneC Zone = "C"
	ZoneD Zone = "D"
	ZoneE Zone = "E"
)

// OrderType classifies how a shipment was paid for / terminated.
type OrderType string

const (
	OrderTypePrepaid OrderType = "Prepaid"
	OrderTypeCOD     OrderType = "COD"
	OrderTypeRTO     OrderType = "RTO"
	OrderTypeReturn  OrderType = "Return"
)

// IsReturnFlow reports whether the order is billed at the RTO flat fee
// instead of the freight formula.
func (o OrderType) IsReturnFlow() bool {
	return o == OrderTypeRTO || o == OrderTypeReturn
}

// FileType represents the allowed rate-card document types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedExtensions maps lowercase file extensions to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}
