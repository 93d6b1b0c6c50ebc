// Package render serializes datasets as JSON, CSV or XML.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/zarlcorp/zfake/internal/record"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
)

// Root and per-record element names of the XML document.
const (
	xmlRoot   = "TestData"
	xmlRecord = "Record"
	xmlHeader = `<?xml version="1.0"?>` + "\n"
)

// baseName is the output file name without extension.
const baseName = "test-data"

var (
	// ErrUnsupportedFormat is returned for any format other than json, csv or xml.
	ErrUnsupportedFormat = errors.New("unsupported format, use json, csv, or xml")
	// ErrInvalidElementName is returned when a field name cannot be an XML element.
	ErrInvalidElementName = errors.New("field name is not a valid XML element name")
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatXML}
}

// ParseFormat normalizes a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
	return f, nil
}

func (f Format) String() string { return string(f) }

// Valid reports whether f is supported.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatCSV || f == FormatXML
}

// FileName is the fixed output file name for f, e.g. test-data.json.
func (f Format) FileName() string {
	return baseName + "." + string(f)
}

// Marshal renders ds in memory.
func Marshal(ds record.Dataset, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, ds, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes ds to w in format f. The dataset is never modified.
func Render(w io.Writer, ds record.Dataset, f Format) error {
	switch f {
	case FormatJSON:
		return renderJSON(w, ds)
	case FormatCSV:
		return renderCSV(w, ds)
	case FormatXML:
		return renderXML(w, ds)
	default:
		return fmt.Errorf("render %q: %w", string(f), ErrUnsupportedFormat)
	}
}

func renderJSON(w io.Writer, ds record.Dataset) error {
	if ds == nil {
		ds = record.Dataset{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

// renderCSV writes the first record's keys as the header and one line per
// record. Values with commas, quotes or line breaks are quoted per RFC 4180.
func renderCSV(w io.Writer, ds record.Dataset) error {
	if len(ds) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	header := ds.Header()
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("render csv: header: %w", err)
	}

	row := make([]string, len(header))
	for i, r := range ds {
		for j, k := range header {
			v, _ := r.Get(k)
			row[j] = record.String(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render csv: record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	return nil
}

func renderXML(w io.Writer, ds record.Dataset) error {
	for i, r := range ds {
		for _, k := range r.Keys() {
			if !validElementName(k) {
				return fmt.Errorf("render xml: record %d: %q: %w", i, k, ErrInvalidElementName)
			}
		}
	}

	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return fmt.Errorf("render xml: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("render xml: %w", err)
	}

	for i, r := range ds {
		if err := encodeRecord(enc, r); err != nil {
			return fmt.Errorf("render xml: record %d: %w", i, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("render xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render xml: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func encodeRecord(enc *xml.Encoder, r record.Record) error {
	start := xml.StartElement{Name: xml.Name{Local: xmlRecord}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	var err error
	r.Each(func(k string, v any) {
		if err != nil {
			return
		}
		el := xml.StartElement{Name: xml.Name{Local: k}}
		err = enc.EncodeElement(record.String(v), el)
	})
	if err != nil {
		return err
	}

	return enc.EncodeToken(start.End())
}

// validElementName accepts names made of letters, digits, '_', '-' and '.',
// starting with a letter or '_'. Colons are rejected to keep clear of
// namespaces.
func validElementName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
