package gotemplate

import (
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("slot") {
		_ = pongo2.RegisterFilter("slot", filterSlot)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSlot renders a target map ({row, column}) as the "row:column" token
// used in data-target attributes.
func filterSlot(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	m, ok := in.Interface().(map[string]any)
	if !ok {
		return pongo2.AsValue(""), nil
	}
	row := pongo2.AsValue(m["row"]).Integer()
	column := pongo2.AsValue(m["column"]).Integer()
	return pongo2.AsValue(pongo2.AsValue(row).String() + ":" + pongo2.AsValue(column).String()), nil
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}
