package modelmap

// DefaultModelMap ships a batch of common Claude/VSCode model names. Tokens
// are already lowercase, matching how Apply looks them up.
func DefaultModelMap() ModelMap {
	return ModelMap{
		ByToken: map[string]Target{
			"claude-3-5-sonnet":     {Model: "claude-3-5-sonnet-latest", Provider: "anthropic"},
			"claude-3-5-haiku":      {Model: "claude-3-5-haiku-latest", Provider: "anthropic"},
			"claude-3-opus":         {Model: "claude-3-opus-latest", Provider: "anthropic"},
			"sonnet":                {Model: "claude-3-5-sonnet-latest", Provider: "anthropic"},
			"haiku":                 {Model: "claude-3-5-haiku-latest", Provider: "anthropic"},
			"opus":                  {Model: "claude-3-opus-latest", Provider: "anthropic"},
			"gpt-4o":                {Model: "gpt-4o", Provider: "openai"},
			"gpt-4o-mini":           {Model: "gpt-4o-mini", Provider: "openai"},
			"o1":                    {Model: "o1", Provider: "openai"},
			"copilot-gpt-4o":        {Model: "gpt-4o", Provider: "openai"},
			"copilot-claude-sonnet": {Model: "claude-3-5-sonnet-latest", Provider: "anthropic"},
		},
		ProviderAliases: map[string]string{
			"claude":    "anthropic",
			"oai":       "openai",
			"gh-copilot": "openai",
			"vscode":    "openai",
		},
	}
}
