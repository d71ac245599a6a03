package formdef

import (
	"embed"
	"io/fs"
)

//go:embed forms/*
var embeddedForms embed.FS

// EmbeddedFS returns the bundled form definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		panic(err)
	}
	return sub
}

// Sample returns the bundled demo form: three text fields, a header and two
// more text fields.
func Sample() Definition {
	data, err := fs.ReadFile(EmbeddedFS(), "sample.yaml")
	if err != nil {
		panic(err)
	}
	def, err := Parse(data, "sample.yaml")
	if err != nil {
		panic(err)
	}
	return def
}
