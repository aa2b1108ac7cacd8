package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Parse decodes a wizard document from JSON without trusting its shape.
//
// The top level must be an object; anything else fails with ErrNotObject.
// Below that, every value is coerced to the type the schema expects:
// numbers and booleans become strings where text is expected, numeric
// strings become integers (0 when unparseable), a bare string stands in for
// a one-element list, and sections of the wrong type fall back to their
// empty defaults. Each coercion that loses information is reported in the
// returned issues.
func Parse(data []byte) (*Document, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w, got %s", ErrNotObject, kindOf(raw))
	}

	c := &coercer{}
	normalized := c.value(obj, reflect.TypeOf(Document{}), "")
	buf, err := json.Marshal(normalized)
	if err != nil {
		return nil, c.issues, fmt.Errorf("re-encoding document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, c.issues, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, c.issues, nil
}

// Load reads and parses a document file.
func Load(path string) (*Document, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	doc, issues, err := Parse(data)
	if err != nil {
		return nil, issues, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, issues, nil
}

// Marshal renders doc as indented JSON, the export format.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

type coercer struct {
	issues []string
}

func (c *coercer) warnf(path, format string, args ...any) {
	c.issues = append(c.issues, path+": "+fmt.Sprintf(format, args...))
}

func (c *coercer) value(v any, t reflect.Type, path string) any {
	switch t.Kind() {
	case reflect.Pointer:
		if v == nil {
			return nil
		}
		return c.value(v, t.Elem(), path)
	case reflect.String:
		return c.str(v, path)
	case reflect.Int, reflect.Int64, reflect.Int32:
		return c.integer(v, path)
	case reflect.Bool:
		return c.boolean(v, path)
	case reflect.Slice:
		return c.slice(v, t, path)
	case reflect.Map:
		return c.mapping(v, t, path)
	case reflect.Struct:
		return c.object(v, t, path)
	}
	return v
}

func (c *coercer) object(v any, t reflect.Type, path string) map[string]any {
	out := map[string]any{}
	m, ok := v.(map[string]any)
	if !ok {
		if v != nil {
			c.warnf(pathOr(path), "expected object, got %s; using defaults", kindOf(v))
		}
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		fv, present := m[name]
		if !present {
			continue
		}
		out[name] = c.value(fv, f.Type, join(path, name))
	}
	return out
}

func (c *coercer) slice(v any, t reflect.Type, path string) any {
	elem := t.Elem()
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, 0, len(x))
		for i, item := range x {
			p := fmt.Sprintf("%s[%d]", path, i)
			if elem.Kind() == reflect.Struct {
				if _, ok := item.(map[string]any); !ok {
					c.warnf(p, "expected object, got %s; dropped", kindOf(item))
					continue
				}
			}
			out = append(out, c.value(item, elem, p))
		}
		return out
	case string:
		if elem.Kind() == reflect.String {
			if strings.TrimSpace(x) == "" {
				return []any{}
			}
			return []any{x}
		}
	}
	c.warnf(path, "expected list, got %s; ignored", kindOf(v))
	return nil
}

func (c *coercer) mapping(v any, t reflect.Type, path string) any {
	out := map[string]any{}
	m, ok := v.(map[string]any)
	if !ok {
		if v != nil {
			c.warnf(path, "expected object, got %s; using empty mapping", kindOf(v))
		}
		return out
	}
	for k, item := range m {
		out[k] = c.value(item, t.Elem(), join(path, k))
	}
	return out
}

func (c *coercer) str(v any, path string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if s := c.str(item, path); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	c.warnf(path, "expected text, got %s; ignored", kindOf(v))
	return ""
}

func (c *coercer) integer(v any, path string) int {
	switch x := v.(type) {
	case nil:
		return 0
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		if f, err := x.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
	case bool:
	}
	c.warnf(path, "expected integer, got %v; using 0", v)
	return 0
}

func (c *coercer) boolean(v any, path string) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1", "on":
			return true
		case "false", "no", "n", "0", "off", "":
			return false
		}
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	}
	c.warnf(path, "expected boolean, got %v; using false", v)
	return false
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func pathOr(path string) string {
	if path == "" {
		return "document"
	}
	return path
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
