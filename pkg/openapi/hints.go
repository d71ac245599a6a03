package openapi

import (
	"math"
	"strconv"
	"strings"
)

const extensionNamespace = "x-formgen"

// gridRow reads the row hint from either
//
//	x-formgen-grid: {row: 2}
//	x-formgen: {grid: {row: 2}}
func gridRow(ext map[string]any) (int, bool) {
	grid := gridExtension(ext)
	if grid == nil {
		return 0, false
	}
	row, ok := toInt(grid["row"])
	if !ok || row <= 0 {
		return 0, false
	}
	return row, true
}

// widgetHint returns x-formgen.widget or x-formgen-widget.
func widgetHint(ext map[string]any) string {
	if nested, ok := ext[extensionNamespace].(map[string]any); ok {
		if widget, ok := nested["widget"].(string); ok {
			return strings.TrimSpace(widget)
		}
	}
	if widget, ok := ext[extensionNamespace+"-widget"].(string); ok {
		return strings.TrimSpace(widget)
	}
	return ""
}

func gridExtension(ext map[string]any) map[string]any {
	if len(ext) == 0 {
		return nil
	}
	if nested, ok := ext[extensionNamespace].(map[string]any); ok {
		if grid, ok := nested["grid"].(map[string]any); ok && len(grid) > 0 {
			return grid
		}
	}
	if grid, ok := ext[extensionNamespace+"-grid"].(map[string]any); ok && len(grid) > 0 {
		return grid
	}
	return nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return n, true
		}
	}
	return 0, false
}
