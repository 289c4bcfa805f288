package exporter

import (
	"io"

	"stock-organizer/internal/model"
)

// Exporter is the unified interface for all output formats
type Exporter interface {
	// Name is the canonical format key ("excel", "html", ...)
	Name() string
	// Extension is the file extension without the dot
	Extension() string
	// ContentType is the MIME type used for downloads
	ContentType() string
	// Export writes the organized records
	Export(w io.Writer, summary *model.Summary, records []model.ProductRecord) error
}
