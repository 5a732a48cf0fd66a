package redisgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// WriteFile renders the command stream to path, one command per line, and
// returns the number of commands written.
func WriteFile(path string, commands []Command) (n int, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	w := bufio.NewWriter(file)
	for _, c := range commands {
		if _, err := w.WriteString(c.Render()); err != nil {
			return 0, fmt.Errorf("writing %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return 0, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing %s: %w", path, err)
	}
	return len(commands), nil
}
