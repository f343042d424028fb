package types

import "strings"

// Format selects the statement renderer.
type Format string

const (
	FormatTXT Format = "txt"
	FormatXML Format = "xml"
)

// Extension is the file extension used when a statement is persisted.
func (f Format) Extension() string {
	return string(f)
}

// Valid reports whether the format has a renderer.
func (f Format) Valid() bool {
	return f == FormatTXT || f == FormatXML
}

// ParseFormat accepts "txt" or "xml" in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", NewUnsupportedFormatError(s)
	}
	return f, nil
}
