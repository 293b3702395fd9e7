// Package colors declares the enums of the end-to-end test.
package colors

// Color is a flags enum.
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
	//enumgen:omit
	Other Color = 256
)

// Level keeps its core surface in package levels.
//
//enumgen:generate
//enumgen:core levels example.com/app/levels
type Level uint8

const (
	Debug Level = iota
	Info
	//enumgen:label "Warning"
	Warn
	Error
	Fatal = Error
)

//enumgen:generate
type empty int16
