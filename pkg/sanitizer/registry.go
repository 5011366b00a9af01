package sanitizer

import (
	"slices"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":            Trim,
		"lower":           ToLower,
		"upper":           ToUpper,
		"trim_lower":      TrimToLower,
		"strip_spaces":    RemoveWhitespace,
		"collapse_spaces": RemoveExtraWhitespace,
		"strip_control":   RemoveControlChars,
		"hash_prefix":     EnsurePrefix("#"),
	}
)

// Register adds a named string transform, replacing any previous one.
// Declarative sources (struct tags, rule files) refer to transforms by these names.
func Register(name string, fn func(string) string) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilTransform
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
	return nil
}

// Lookup returns the transform registered under name.
func Lookup(name string) (func(string) string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Chain resolves every name and composes the transforms in order.
func Chain(names ...string) (func(string) string, error) {
	transforms := make([]func(string) string, 0, len(names))
	for _, name := range names {
		fn, ok := Lookup(name)
		if !ok {
			return nil, &UnknownTransformError{Name: name}
		}
		transforms = append(transforms, fn)
	}
	return Compose(transforms...), nil
}

// Names lists registered transform names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
