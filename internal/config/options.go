package config

import (
	"fmt"
	"sort"
	"strings"
)

// Options is the per-system option store. Values are kept as strings, the
// way the frontend persists them.
type Options map[string]string

// String returns the raw value for key and whether it is set.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	return v, ok
}

// Bool reports whether key is set to one of the frontend's truthy values.
func (o Options) Bool(key string) bool {
	switch strings.ToLower(o[key]) {
	case "1", "true", "on", "enabled":
		return true
	default:
		return false
	}
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of o with overrides applied on top.
func (o Options) Merge(overrides Options) Options {
	out := make(Options, len(o)+len(overrides))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// ParseOverrides turns key=value pairs into Options.
func ParseOverrides(pairs []string) (Options, error) {
	out := make(Options, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOption, pair)
		}
		out[key] = value
	}
	return out, nil
}
