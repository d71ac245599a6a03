// Package palette describes the field types a user can drag onto the form
// canvas and turns palette entries into drag descriptors with fresh internal
// names.
package palette
