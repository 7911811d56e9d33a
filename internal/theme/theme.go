// Package theme defines the pluggable theme abstraction. Built-in themes
// live under internal/theme/themes and register via their own init().
package theme

import (
	"fmt"
	"html/template"
	"sort"
	"sync"

	"git.home.luguber.info/inful/blogsmith/internal/styles"
)

// Theme supplies the style modules and page templates for a site.
//
// Base returns the base module import order; Extensions returns modules
// imported after the base chain that may depend on already-resolved
// tokens. Templates returns the parsed template set containing the
// "post", "page", "index" and "tag" documents plus shared partials.
type Theme interface {
	Name() string
	Modules() []styles.Module
	Base() []string
	Extensions() []string
	Templates() (*template.Template, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Theme{}
)

// Register registers a Theme implementation. Duplicate names are ignored.
func Register(t Theme) {
	if t == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[t.Name()]; exists {
		return
	}
	registry[t.Name()] = t
}

// Lookup returns the named theme or an error listing what is available.
func Lookup(name string) (Theme, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", name, names())
	}
	return t, nil
}

// Names returns registered theme names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
