package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/palette"
)

var (
	// ErrOperationNotFound is returned when no operation matches the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no usable object
	// request body.
	ErrNoRequestBody = errors.New("openapi: operation has no object request body")
)

// multiLineThreshold is the maxLength above which strings become textareas.
const multiLineThreshold = 255

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Operation summarises an operation of a document.
type Operation struct {
	ID      string `json:"id"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Summary string `json:"summary,omitempty"`
}

// Option configures Import.
type Option func(*importer)

type importer struct {
	labeler func(string) string
	header  bool
}

// WithLabeler overrides how property names become labels.
func WithLabeler(labeler func(string) string) Option {
	return func(i *importer) {
		if labeler != nil {
			i.labeler = labeler
		}
	}
}

// WithoutHeader skips the leading header row built from the summary.
func WithoutHeader() Option {
	return func(i *importer) {
		i.header = false
	}
}

// Operations lists the operations of a document, ordered by id. Operations
// without an operationId are keyed as "method:path".
func Operations(ctx context.Context, data []byte) ([]Operation, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return nil, err
	}
	var out []Operation
	for _, entry := range collect(doc) {
		out = append(out, entry.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Import builds a form definition from the request body of operationID.
func Import(ctx context.Context, data []byte, operationID string, opts ...Option) (formdef.Definition, error) {
	imp := importer{labeler: DefaultLabeler, header: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&imp)
		}
	}

	doc, err := load(ctx, data)
	if err != nil {
		return formdef.Definition{}, err
	}

	var op *collected
	for _, entry := range collect(doc) {
		if entry.info.ID == operationID {
			op = &entry
			break
		}
	}
	if op == nil {
		return formdef.Definition{}, fmt.Errorf("%q: %w", operationID, ErrOperationNotFound)
	}

	schema := requestSchema(op.operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return formdef.Definition{}, fmt.Errorf("%q: %w", operationID, ErrNoRequestBody)
	}

	grid := imp.rows(schema)
	title := op.info.Summary
	if title == "" {
		title = operationID
	}
	if imp.header && op.info.Summary != "" {
		heading := layout.Field{
			InternalName: palette.NameFor(grid, op.info.Summary),
			Label:        op.info.Summary,
			Type:         layout.FieldTypeHeader,
		}
		grid = append(layout.Grid{{heading}}, grid...)
	}

	if err := grid.Validate(); err != nil {
		return formdef.Definition{}, fmt.Errorf("openapi: %s: %w", operationID, err)
	}
	def := formdef.FromGrid(title, grid)
	def.Source = operationID
	return def, nil
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

type collected struct {
	info      Operation
	operation *openapi3.Operation
}

func collect(doc *openapi3.T) []collected {
	if doc.Paths == nil {
		return nil
	}
	var out []collected
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, collected{
				info: Operation{
					ID:      id,
					Method:  strings.ToUpper(method),
					Path:    path,
					Summary: strings.TrimSpace(operation.Summary),
				},
				operation: operation,
			})
		}
	}
	return out
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// rows groups properties by their grid row hint. Hinted properties sharing
// a hint fill one row in name order and spill into a new row past
// layout.MaxRowFields; unhinted properties get a row each. Rows appear in the
// order their first property sorts.
func (imp importer) rows(schema *openapi3.Schema) layout.Grid {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		grid    layout.Grid
		current = make(map[int]int)
	)
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := imp.field(name, ref.Value)
		if !ok {
			continue
		}

		hint, hinted := gridRow(ref.Value.Extensions)
		if hinted {
			if idx, exists := current[hint]; exists && len(grid[idx]) < layout.MaxRowFields {
				grid[idx] = append(grid[idx], field)
				continue
			}
			current[hint] = len(grid)
		}
		grid = append(grid, layout.Row{field})
	}
	return grid
}

func (imp importer) field(name string, schema *openapi3.Schema) (layout.Field, bool) {
	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = imp.labeler(name)
	}
	field := layout.Field{InternalName: name, Label: label}

	switch schemaType(schema) {
	case openapi3.TypeBoolean:
		field.Type = layout.FieldTypeBooleanCheckbox
	case openapi3.TypeInteger, openapi3.TypeNumber:
		field.Type = layout.FieldTypeNumber
	case openapi3.TypeString:
		switch {
		case len(schema.Enum) > 0:
			field.Type = layout.FieldTypeDropdown
			if widgetHint(schema.Extensions) == "radio" {
				field.Type = layout.FieldTypeRadio
			}
			field.Options = imp.options(schema.Enum)
			field.Preselected = preselected(schema.Default, field.Options)
		case schema.Format == "date" || schema.Format == "date-time":
			field.Type = layout.FieldTypeDate
		case isMultiLine(schema):
			field.Type = layout.FieldTypeMultiLineText
		default:
			field.Type = layout.FieldTypeSingleLineText
		}
	case openapi3.TypeArray:
		if schema.Items == nil || schema.Items.Value == nil || len(schema.Items.Value.Enum) == 0 {
			return layout.Field{}, false
		}
		field.Type = layout.FieldTypeCheckboxes
		field.Options = imp.options(schema.Items.Value.Enum)
	default:
		return layout.Field{}, false
	}
	return field, true
}

func (imp importer) options(values []any) []layout.Option {
	out := make([]layout.Option, 0, len(values))
	for _, value := range values {
		raw := fmt.Sprint(value)
		out = append(out, layout.Option{Value: raw, Text: imp.labeler(raw)})
	}
	return out
}

func preselected(value any, options []layout.Option) string {
	if value == nil {
		return ""
	}
	raw := fmt.Sprint(value)
	for _, opt := range options {
		if opt.Value == raw {
			return raw
		}
	}
	return ""
}

func isMultiLine(schema *openapi3.Schema) bool {
	switch widgetHint(schema.Extensions) {
	case "textarea", "multi-line-text":
		return true
	}
	if schema.Format == "textarea" {
		return true
	}
	return schema.MaxLength != nil && *schema.MaxLength > multiLineThreshold
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	for _, value := range values {
		if value != openapi3.TypeNull {
			return value
		}
	}
	return ""
}
