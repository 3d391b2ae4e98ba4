// Package parser defines the common parser contract every file-format
// parser implements: a pure `supports(path) -> bool` gate and a pure
// `parse(bytes, path) -> AgentConfig | error` transform.
package parser

import "github.com/nikhil-pandey/switchboard/internal/agentconfig"

// Parser is the (supports, parse) pair every agent-definition file format implements.
type Parser interface {
	Supports(path string) bool
	Parse(data []byte, path string) (agentconfig.AgentConfig, error)
}
