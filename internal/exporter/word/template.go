package word

import (
	"archive/zip"
	"bytes"
)

// Placeholders replaced in the report template
const (
	PlaceholderDate    = "{{Date}}"
	PlaceholderSource  = "{{Source}}"
	PlaceholderTotal   = "{{TotalRecords}}"
	PlaceholderContent = "{{Content}}"
)

var templateParts = []struct {
	Name string
	Body string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	// Required by some parsers
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr><w:t>Inventario organizado con tallas</w:t></w:r></w:p>
<w:p><w:r><w:t>Fecha: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Archivo: {{Source}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Total productos: {{TotalRecords}}</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/></w:rPr><w:t xml:space="preserve">{{Content}}</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// Template builds the minimal report .docx with its placeholders
func Template() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range templateParts {
		fw, err := w.Create(part.Name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write([]byte(part.Body)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
