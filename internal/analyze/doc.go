// Package analyze discovers enums in Go source code.
//
// It loads packages with golang.org/x/tools/go/packages and looks for named
// integer types whose doc comment carries an //enumgen:generate marker. The
// package-level constants of such a type become its members, in source order;
// their values come from go/types, so iota and constant expressions work.
//
// Markers on the type:
//
//	//enumgen:generate
//	//enumgen:flags
//	//enumgen:transform upper
//	//enumgen:name Paint
//	//enumgen:core paints example.com/app/paints
//
// Markers on a member constant:
//
//	//enumgen:label "Display name"
//	//enumgen:description "Longer text"
//	//enumgen:omit
//	//enumgen:transform lower
package analyze
