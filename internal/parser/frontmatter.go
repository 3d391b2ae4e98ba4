package parser

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter splits a `---\n...yaml...\n---\nbody` file into the decoded
// YAML header and the trimmed body. It returns an error if the file doesn't
// start with a `---` delimiter or the block is never closed.
func Frontmatter(data []byte, header any) (body string, err error) {
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyFile
	}

	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", ErrNoFrontmatter
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return "", ErrUnterminatedFrontmatter
	}

	yamlBlock := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(yamlBlock), header); err != nil {
		return "", err
	}

	body = strings.TrimSpace(strings.Join(lines[closing+1:], "\n"))
	return body, nil
}

type frontmatterError string

func (e frontmatterError) Error() string { return string(e) }

const (
	ErrEmptyFile               frontmatterError = "empty file"
	ErrNoFrontmatter           frontmatterError = "file does not begin with a yaml frontmatter block"
	ErrUnterminatedFrontmatter frontmatterError = "unterminated frontmatter block"
)
