package browser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/runtime"
)

// stringifyRemoteObject renders a CDP RemoteObject as display text.
// This handles primitives, objects, arrays, and special values like
// undefined/null.
func stringifyRemoteObject(obj *runtime.RemoteObject) string {
	if obj == nil {
		return "null"
	}

	// Handle special unserializable values (Infinity, -Infinity, NaN, -0, bigint)
	if obj.UnserializableValue != "" {
		return string(obj.UnserializableValue)
	}

	// Handle primitive types with Value
	if obj.Value != nil {
		var v any
		if err := json.Unmarshal(obj.Value, &v); err == nil {
			if str, ok := v.(string); ok {
				return str
			}
			return fmt.Sprint(v)
		}
		// If unmarshal fails, return the raw JSON
		return string(obj.Value)
	}

	// Handle undefined
	if obj.Type == runtime.TypeUndefined {
		return "undefined"
	}

	// Handle null (subtype is "null")
	if obj.Subtype == runtime.SubtypeNull {
		return "null"
	}

	// For objects/arrays, use Preview if available for better detail
	if obj.Preview != nil {
		return stringifyObjectPreview(obj.Preview)
	}

	// Fallback to description (e.g., "[object Object]", "function foo()")
	if obj.Description != "" {
		return obj.Description
	}

	// Last resort: return the type
	return string(obj.Type)
}

// stringifyObjectPreview renders an ObjectPreview as display text.
func stringifyObjectPreview(preview *runtime.ObjectPreview) string {
	if preview == nil {
		return "null"
	}

	// For arrays, build a bracketed list
	if preview.Subtype == runtime.SubtypeArray {
		parts := make([]string, 0, len(preview.Properties)+1)
		for _, prop := range preview.Properties {
			parts = append(parts, prop.Value)
		}
		if preview.Overflow {
			parts = append(parts, "...")
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	// For objects, build a braced key/value list
	parts := make([]string, 0, len(preview.Properties)+1)
	for _, prop := range preview.Properties {
		parts = append(parts, prop.Name+": "+prop.Value)
	}
	if preview.Overflow {
		parts = append(parts, "...")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
