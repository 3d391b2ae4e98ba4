package modelmap

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileMapping is the `[[mappings]]` TOML shape of the model-map file.
type fileMapping struct {
	Token           string            `toml:"token"`
	ToModel         string            `toml:"to_model"`
	ToProvider      string            `toml:"to_provider"`
	Aliases         []string          `toml:"aliases"`
	ProviderAliases map[string]string `toml:"provider_aliases"`
}

type fileFormat struct {
	Mappings        []fileMapping     `toml:"mappings"`
	ProviderAliases map[string]string `toml:"provider_aliases"`
}

// LoadFile parses a model-map.toml file into a ModelMap. Each alias in a
// mapping entry produces an additional ByToken entry pointing at the same
// canonical target.
func LoadFile(path string) (ModelMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ModelMap{}, err
	}
	return ParseFile(data)
}

func ParseFile(data []byte) (ModelMap, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return ModelMap{}, err
	}

	m := ModelMap{
		ByToken:         map[string]Target{},
		ProviderAliases: map[string]string{},
	}
	for alias, canonical := range f.ProviderAliases {
		m.ProviderAliases[normalizeKey(alias)] = canonical
	}
	for _, mapping := range f.Mappings {
		target := Target{Model: mapping.ToModel, Provider: mapping.ToProvider}
		m.ByToken[normalizeKey(mapping.Token)] = target
		for _, alias := range mapping.Aliases {
			m.ByToken[normalizeKey(alias)] = target
		}
		for alias, canonical := range mapping.ProviderAliases {
			m.ProviderAliases[normalizeKey(alias)] = canonical
		}
	}
	return m, nil
}

func normalizeKey(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
