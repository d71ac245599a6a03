// Package render defines the renderer contract shared by the HTML and
// terminal canvases, the Canvas projection both of them draw, and the
// options (theme, submit caption, localised texts) passed per render.
package render
