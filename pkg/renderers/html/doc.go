// Package html renders the editor canvas as an HTML form fragment using the
// embedded pongo2 templates. Drop slots are emitted as elements carrying a
// data-target="row:column" attribute, only where the drop policy allows.
package html
