package parser

import "strings"

// SplitCommaOrWhitespace splits on commas and whitespace, trimming empty
// fields. Used for Codex `tags`/`tools` strings and VSCode `tools` strings.
func SplitCommaOrWhitespace(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\t' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SplitCommaOnly splits on commas only, trimming surrounding whitespace from
// each field but preserving internal spaces so multi-word tags survive
// ("deep research, demo" -> ["deep research", "demo"]).
func SplitCommaOnly(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StringsFromAny coerces a YAML/TOML-decoded `any` into a []string. It
// accepts a native list or a single delimited string, delegating the split
// strategy to splitFn.
func StringsFromAny(v any, splitFn func(string) []string) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return splitFn(t)
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
