package gen

import (
	"bytes"
	"fmt"
	"time"
)

// GeneratorName is written into every provenance header.
const GeneratorName = "enum-generator"

// timestampLayout renders the generation time, always in UTC.
const timestampLayout = "2006-01-02 15:04:05 UTC"

// Header is the provenance comment prefixed to every artifact.
type Header struct {
	Version string
	// Time is the generation instant. Ignored when OmitTimestamp is set.
	Time          time.Time
	OmitTimestamp bool
}

// Render returns the header lines followed by a blank line.
func (h Header) Render() []byte {
	var buf bytes.Buffer

	version := h.Version
	if version == "" {
		version = "dev"
	}

	fmt.Fprintf(&buf, "// Generated by %s %s\n", GeneratorName, version)

	if !h.OmitTimestamp {
		fmt.Fprintf(&buf, "// Generated on: %s\n", h.Time.UTC().Format(timestampLayout))
	}

	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", GeneratorName)

	return buf.Bytes()
}

// Apply returns a copy of file with the header prepended to its content.
func (h Header) Apply(file GeneratedFile) GeneratedFile {
	header := h.Render()
	content := make([]byte, 0, len(header)+len(file.Content))
	content = append(content, header...)
	file.Content = append(content, file.Content...)

	return file
}
