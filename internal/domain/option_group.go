package domain

import "strings"

// OptionGroup is the state of one multi-select checkbox group.
//
// Selected holds catalog options that are ticked. Extra holds values that
// are not in the catalog (typically restored from an older or hand-edited
// document) so they survive a round trip. Custom is the free-text override,
// honored only while CustomEnabled is set.
type OptionGroup struct {
	Selected      []string
	Extra         []string
	CustomEnabled bool
	Custom        string
}

// Has reports whether option is ticked.
func (g OptionGroup) Has(option string) bool {
	for _, s := range g.Selected {
		if s == option {
			return true
		}
	}
	return false
}

// CustomValues returns the trimmed override values. With split set the text
// is treated as a comma-separated list.
func (g OptionGroup) CustomValues(split bool) []string {
	if !g.CustomEnabled {
		return nil
	}
	text := strings.TrimSpace(g.Custom)
	if text == "" {
		return nil
	}
	if !split {
		return []string{text}
	}
	var out []string
	for _, part := range strings.Split(text, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Values returns the canonical selection list: catalog options in catalog
// order, then uncatalogued selections, Extra and custom values in the order
// given. Free text that matches a catalog option takes the catalog position.
// Duplicates are dropped.
func (g OptionGroup) Values(catalog []string, split bool) []string {
	picked := make(map[string]bool)
	var tail []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		if inCatalog(v, catalog) {
			picked[v] = true
			return
		}
		tail = append(tail, v)
	}
	for _, s := range g.Selected {
		add(s)
	}
	for _, s := range g.Extra {
		add(s)
	}
	for _, s := range g.CustomValues(split) {
		add(s)
	}

	out := make([]string, 0, len(picked)+len(tail))
	for _, opt := range catalog {
		if picked[opt] {
			out = append(out, opt)
			delete(picked, opt)
		}
	}
	seen := make(map[string]bool, len(tail))
	for _, v := range tail {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// GroupFromValues rebuilds a group from a stored selection list. Catalog
// values become ticked options, anything else goes to Extra.
func GroupFromValues(values []string, catalog []string) OptionGroup {
	g := OptionGroup{Selected: []string{}, Extra: []string{}}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if inCatalog(v, catalog) {
			if !g.Has(v) {
				g.Selected = append(g.Selected, v)
			}
			continue
		}
		g.Extra = append(g.Extra, v)
	}
	return g
}

func inCatalog(v string, catalog []string) bool {
	for _, c := range catalog {
		if c == v {
			return true
		}
	}
	return false
}
