// Package formdef reads form definitions, documents holding a title and the
// rows of a form, and turns them into layout grids.
//
// Definitions may be JSON or YAML:
//
//	title: Contact
//	rows:
//	  - - internalName: firstname
//	      label: First name
//	      type: single-line-text
//
// Field types accept the canonical names plus a few loose spellings such as
// "textarea" or "select". Fields without an internal name get one derived
// from their label.
package formdef
