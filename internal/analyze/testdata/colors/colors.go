// Package colors is scanned by the analyzer tests.
package colors

// Color is a set of primary colors.
//
//enumgen:generate
//enumgen:flags
//enumgen:transform upper
type Color int32

const (
	//enumgen:label "FirstDisplayName"
	//enumgen:description "FirstDescription"
	First  Color = 8
	Second Color = 1 //enumgen:transform lower
	Third  Color = 2
	_      Color = 4
	//enumgen:omit
	Other Color = 256
)

//enumgen:generate
//enumgen:name Severity
type level uint8

const (
	debug level = iota
	info
	warn
)

// Plain is not marked.
type Plain int

const PlainA Plain = 1

// Ratio cannot be an enum.
//
//enumgen:generate
type Ratio float64

//enumgen:generate
//enumgen:flag
type Mode int

const ModeRead Mode = 1
