package analyze

import (
	"enum-generator/internal/diagnostic"
	"enum-generator/internal/model"
)

// PackageInfo describes one loaded package and the enums found in it.
type PackageInfo struct {
	Path string // e.g., "example.com/app/color"
	Name string // e.g., "color"
	// Dir is the directory holding the package sources.
	Dir   string
	Enums []*model.Enum
}

// Result is the outcome of a scan.
type Result struct {
	Packages []*PackageInfo
	// Diagnostics holds warnings for markers that could not be applied.
	Diagnostics diagnostic.Diagnostics
}

// Enums returns every enum found, in package then source order.
func (r *Result) Enums() []*model.Enum {
	var enums []*model.Enum
	for _, p := range r.Packages {
		enums = append(enums, p.Enums...)
	}

	return enums
}

// Package returns the package an enum was found in, or nil.
func (r *Result) Package(e *model.Enum) *PackageInfo {
	for _, p := range r.Packages {
		for _, pe := range p.Enums {
			if pe == e {
				return p
			}
		}
	}

	return nil
}
