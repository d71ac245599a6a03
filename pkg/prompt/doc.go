// Package prompt drives an editor session from an interactive terminal. Each
// turn draws the canvas, asks for an action and, for drags, offers exactly
// the drop targets the policy allows.
package prompt
