// Package modelmap rewrites free-form model/provider tokens into canonical
// identifiers.
package modelmap

import "strings"

// Target is what a token resolves to.
type Target struct {
	Model    string
	Provider string // "" means "leave provider decision to the caller"
}

// ModelMap is loaded once at startup: built-ins, optionally extended or
// overridden by a TOML file.
type ModelMap struct {
	ByToken         map[string]Target // keyed by lowercased token
	ProviderAliases map[string]string // keyed by lowercased alias -> canonical
}

// Merge overlays overlay on top of base, returning a new ModelMap. Entries in
// overlay win on key collision.
func Merge(base, overlay ModelMap) ModelMap {
	out := ModelMap{
		ByToken:         make(map[string]Target, len(base.ByToken)+len(overlay.ByToken)),
		ProviderAliases: make(map[string]string, len(base.ProviderAliases)+len(overlay.ProviderAliases)),
	}
	for k, v := range base.ByToken {
		out.ByToken[k] = v
	}
	for k, v := range overlay.ByToken {
		out.ByToken[strings.ToLower(k)] = v
	}
	for k, v := range base.ProviderAliases {
		out.ProviderAliases[k] = v
	}
	for k, v := range overlay.ProviderAliases {
		out.ProviderAliases[strings.ToLower(k)] = v
	}
	return out
}
