package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetFile is the name of the default canvas stylesheet in AssetsFS.
const StylesheetFile = "formbuilder.css"

// TemplatesFS exposes the embedded canvas templates rooted at the templates
// directory, so includes resolve by bare file name.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the static files the canvas markup expects, such as the
// default stylesheet. Typical mount:
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(html.AssetsFS())))
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
