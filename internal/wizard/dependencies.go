package wizard

import (
	"slices"
	"strings"

	"github.com/alexanderramin/nafwizard/internal/catalog"
	"github.com/alexanderramin/nafwizard/internal/document"
	"github.com/alexanderramin/nafwizard/internal/domain"
)

// DefaultDependencies is the dependency list emitted when nothing is
// ticked. It is also the "no change" baseline for change detection.
func DefaultDependencies() []document.Dependency {
	return []document.Dependency{
		{Name: catalog.DependencyLabel("network_infra"), Details: ""},
		{Name: catalog.DependencyLabel("revision_control"), Details: domain.DefaultRevisionControl},
	}
}

// IsDefaultDependencies reports whether deps equals the default pair,
// ignoring order.
func IsDefaultDependencies(deps []document.Dependency) bool {
	return slices.Equal(sortedPairs(deps), sortedPairs(DefaultDependencies()))
}

func sortedPairs(deps []document.Dependency) []document.Dependency {
	out := make([]document.Dependency, len(deps))
	for i, d := range deps {
		out[i] = document.Dependency{Name: strings.TrimSpace(d.Name), Details: strings.TrimSpace(d.Details)}
	}
	slices.SortFunc(out, func(a, b document.Dependency) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Details, b.Details)
	})
	return out
}

func buildDependencies(sel []domain.DependencySelection) []document.Dependency {
	out := make([]document.Dependency, 0, len(sel))
	index := make(map[string]int, len(sel))
	for _, s := range sel {
		key := strings.TrimSpace(s.Key)
		if key == "" {
			continue
		}
		dep := document.Dependency{Name: catalog.DependencyLabel(key), Details: strings.TrimSpace(s.Details)}
		if i, dup := index[key]; dup {
			out[i] = dep
			continue
		}
		index[key] = len(out)
		out = append(out, dep)
	}
	if len(out) == 0 {
		return DefaultDependencies()
	}
	return out
}
