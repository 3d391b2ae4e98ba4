package toolmap

// DefaultMapping builds the hard-coded default per-provider tool tables.
func DefaultMapping() LoadedMapping {
	return LoadedMapping{
		Anthropic: Table{
			Aliases: map[string]string{
				"Edit":       "str_replace_editor",
				"MultiEdit":  "str_replace_editor",
				"Write":      "str_replace_editor",
				"WebFetch":   "WebSearch",
				"TodoWrite":  "TodoWrite",
			},
			Map: map[string]MappingDest{
				"plan":                Builtin(BuiltinPlan),
				"apply_patch":         Builtin(BuiltinApplyPatch),
				"view_image":          Builtin(BuiltinViewImage),
				"web_search":          Builtin(BuiltinWebSearch),
				"str_replace_editor":  Builtin(BuiltinApplyPatch),
				"WebSearch":           Builtin(BuiltinWebSearch),
				"TodoWrite":           Builtin(BuiltinPlan),
				"Bash":                Builtin(BuiltinTerminalAccess),
				"Grep":                Builtin(BuiltinTerminalAccess),
				"Glob":                Builtin(BuiltinTerminalAccess),
				"Read":                Builtin(BuiltinTerminalAccess),
				"Kill":                Builtin(BuiltinTerminalAccess),
			},
		},
		VSCode: Table{
			Aliases: map[string]string{},
			Map: map[string]MappingDest{
				"edit":        Builtin(BuiltinApplyPatch),
				"new":         Builtin(BuiltinApplyPatch),
				"search":      Builtin(BuiltinWebSearch),
				"fetch":       Builtin(BuiltinWebSearch),
				"githubRepo":  Builtin(BuiltinWebSearch),
				"runCommands": Builtin(BuiltinTerminalAccess),
				"memory": McpTool(
					"memory",
					"memory",
					"npx",
					[]string{"-y", "@modelcontextprotocol/server-memory"},
					nil,
				),
			},
		},
	}
}
