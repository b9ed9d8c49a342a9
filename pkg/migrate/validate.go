package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// ValidateDir checks migration filenames and the goose Up/Down markers,
// accumulating every problem so one run reports the full list. An empty
// directory is valid.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	var problems error
	seen := map[string]string{} // version -> filename

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			problems = multierr.Append(problems, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name))
			continue
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			problems = multierr.Append(problems, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name))
		} else {
			seen[version] = name
		}

		problems = multierr.Append(problems, validateMarkers(dir, name))
	}

	return problems
}

func validateMarkers(dir, name string) error {
	full := filepath.Join(dir, name)
	b, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("read file %q: %w", full, err)
	}

	var problems error
	txt := string(b)
	if !strings.Contains(txt, "-- +goose Up") {
		problems = multierr.Append(problems, fmt.Errorf("migration %q missing \"-- +goose Up\"", name))
	}
	if !strings.Contains(txt, "-- +goose Down") {
		problems = multierr.Append(problems, fmt.Errorf("migration %q missing \"-- +goose Down\"", name))
	}
	return problems
}
