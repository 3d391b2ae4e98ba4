package loader

import "fmt"

// dedupeToolNames keeps the first occurrence of each tool name and
// disambiguates every later collision by appending "_<n>", n starting at 2
// per colliding base name. Input order is otherwise preserved.
func dedupeToolNames(names []string) []string {
	seen := map[string]int{}
	out := make([]string, len(names))
	for i, name := range names {
		count := seen[name]
		seen[name] = count + 1
		if count == 0 {
			out[i] = name
			continue
		}
		out[i] = fmt.Sprintf("%s_%d", name, count+1)
	}
	return out
}
