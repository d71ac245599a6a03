// Package editor wires the layout engine to user interaction. A Session plays
// the role of the form canvas: drag callbacks record what is being dragged,
// drop callbacks hand the chosen target to layout.Apply, and every accepted
// drop is kept for undo.
package editor
