package formstate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/nafwizard/internal/scheduler"
)

// Snapshot values arrive from JSON, YAML or code, so every read goes
// through a coercion that accepts the plausible encodings of its type.

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool, int, int64, float64:
		return fmt.Sprint(x)
	}
	return ""
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return err == nil && b
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	}
	return false
}

// asInt falls back to 0 when v cannot be read as a whole number.
func asInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
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
	}
	return 0
}

func asStrings(v any) []string {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		return []string{x}
	}
	return nil
}

// asMap reads a nested mapping. yaml.v3 decodes mappings below a Snapshot
// as Snapshot, JSON and code use map[string]any.
func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Snapshot:
		return x, true
	}
	return nil, false
}

func asStringMap(v any) map[string]string {
	out := map[string]string{}
	if x, ok := v.(map[string]string); ok {
		for k, val := range x {
			out[k] = val
		}
		return out
	}
	if x, ok := asMap(v); ok {
		for k, val := range x {
			out[k] = asString(val)
		}
	}
	return out
}

// asDate returns nil for absent or unparseable values.
func asDate(v any) *time.Time {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return nil
		}
		d := scheduler.DateOf(x)
		return &d
	case *time.Time:
		if x == nil {
			return nil
		}
		return asDate(*x)
	case string:
		d, err := scheduler.ParseDate(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		return &d
	}
	return nil
}

func asRecords(v any) []map[string]any {
	switch x := v.(type) {
	case []map[string]any:
		return x
	case []Snapshot:
		out := make([]map[string]any, 0, len(x))
		for _, item := range x {
			out = append(out, item)
		}
		return out
	case []any:
		out := make([]map[string]any, 0, len(x))
		for _, item := range x {
			if m, ok := asMap(item); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
