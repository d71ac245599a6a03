// Package template defines the template engine seam used by template based
// renderers. The gotemplate subpackage provides the pongo2 implementation.
package template
