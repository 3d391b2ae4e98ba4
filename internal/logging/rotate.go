package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// openRotatedLogFile opens the day's switchboard-mcp.log, suffixed with the
// UTC date, creating dir if needed. No rotation library exists anywhere in
// the retrieved corpus, so the rotation itself is a plain date-suffixed
// filename rather than a dependency.
func openRotatedLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := fmt.Sprintf("switchboard-mcp-%s.log", now.UTC().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
