// Package manifest loads enum declarations from YAML manifest files.
//
// A manifest describes one Go package and the enums declared in it:
//
//	version: "1"
//	package: color
//	import_path: example.com/app/color
//	enums:
//	  - name: Color
//	    underlying: int32
//	    flags: true
//	    members:
//	      - {name: Red, value: 1, label: "Red!"}
//	      - {name: Green}          # auto-numbered: 2
//
// Members without a value continue numbering from the previous member, the
// way iota does.
package manifest
