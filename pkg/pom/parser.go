// Package pom reads the little bomgen needs from a Maven POM: its packaging.
//
// Raw text is first normalized with an [Entity] table, then parsed as UTF-8
// XML. Coordinates are not read from the document; package m2 derives them
// from the file's location.
package pom

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/activestate/bomgen/pkg/errors"
)

// DefaultPackaging is Maven's packaging when a POM declares none.
const DefaultPackaging = "jar"

// Parser loads POM files. It is safe for concurrent use.
type Parser struct {
	replacer *strings.Replacer
}

// NewParser returns a parser that applies entities before parsing.
// A nil table means [DefaultEntities].
func NewParser(entities []Entity) *Parser {
	if entities == nil {
		entities = DefaultEntities
	}
	return &Parser{replacer: newReplacer(entities)}
}

// Normalize applies the entity table to raw POM text.
func (p *Parser) Normalize(data []byte) []byte {
	return []byte(p.replacer.Replace(string(data)))
}

// ReadFile reads, normalizes and parses the POM at path.
func (p *Parser) ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", path)
	}
	doc, err := Parse(p.Normalize(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	return doc, nil
}

// Document is the parsed view of one POM.
type Document struct {
	// Root is the root element name, normally "project".
	Root xml.Name

	// Namespace is the default namespace declared on the root element, or ""
	// when the POM declares none.
	Namespace string

	packaging *string
}

// Packaging returns the text of the root's packaging child, verbatim, or
// [DefaultPackaging] when the element is absent.
func (d *Document) Packaging() string {
	if d.packaging == nil {
		return DefaultPackaging
	}
	return *d.packaging
}

// HasPackaging reports whether the POM declares a packaging element.
func (d *Document) HasPackaging() bool {
	return d.packaging != nil
}

// Parse parses already-normalized POM text. The whole document is consumed so
// that malformed XML anywhere in it is reported.
//
// A packaging element counts only when it is a direct child of the root and
// lives in the root's default namespace.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	// Input is UTF-8 after normalization regardless of the declared encoding.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var (
		doc     Document
		seen    bool
		depth   int
		inPkg   bool
		pkgText strings.Builder
	)
	finish := func() {
		text := pkgText.String()
		doc.packaging = &text
		inPkg = false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if inPkg {
				// The value is the text before the first child node.
				finish()
				continue
			}
			switch {
			case depth == 1:
				doc.Root = t.Name
				doc.Namespace = defaultNamespace(t.Attr)
				seen = true
			case depth == 2 && doc.packaging == nil &&
				t.Name.Local == "packaging" && t.Name.Space == doc.Namespace:
				inPkg = true
				pkgText.Reset()
				empty := ""
				doc.packaging = &empty
			}
		case xml.CharData:
			if inPkg && depth == 2 {
				pkgText.Write(t)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			if inPkg {
				finish()
			}
		case xml.EndElement:
			if inPkg && depth == 2 {
				finish()
			}
			depth--
		}
	}

	if !seen {
		return nil, errors.New(errors.ErrCodeParse, "document has no root element")
	}
	return &doc, nil
}

// defaultNamespace returns the value of an xmlns attribute, if any.
func defaultNamespace(attrs []xml.Attr) string {
	for _, a := range attrs {
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return a.Value
		}
	}
	return ""
}
