// Package openapi seeds form grids from OpenAPI 3 documents. The request body
// schema of an operation becomes a form definition: each property turns into
// a field, and grid hints in the x-formgen extensions decide which
// properties share a row.
package openapi
