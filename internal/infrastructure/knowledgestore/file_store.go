package knowledgestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"portfolio-api/internal/domain/knowledge"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// LoadOrInitialize reads the knowledge document at path. When the file does
// not exist the default document is written there first. Creation is
// idempotent: concurrent callers, in this process or another, observe either
// the complete default file or the one that won the race.
func LoadOrInitialize(path string) (*knowledge.Document, error) {
	if _, err := Initialize(path); err != nil {
		return nil, err
	}
	return Load(path)
}

// Initialize materializes the default document at path if nothing is there.
// It reports whether this call created the file.
func Initialize(path string) (bool, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return false, fmt.Errorf("empty knowledge path")
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat knowledge file: %w", err)
	}

	b, err := encode(knowledge.Default(), formatFor(path))
	if err != nil {
		return false, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create knowledge dir: %w", err)
	}

	return publishExclusive(dir, path, b)
}

// publishExclusive writes b to a temp file and links it into place, which
// fails instead of overwriting when path already exists.
func publishExclusive(dir, path string, b []byte) (bool, error) {
	tmp, err := os.CreateTemp(dir, ".knowledge-*.tmp")
	if err != nil {
		return false, fmt.Errorf("create temp knowledge file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("write temp knowledge file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close temp knowledge file: %w", err)
	}

	err = os.Link(tmpName, path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}

	// Filesystems without hard links: fall back to an exclusive create.
	f, ferr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if ferr != nil {
		if errors.Is(ferr, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("publish knowledge file: %w", ferr)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write knowledge file: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close knowledge file: %w", err)
	}
	return true, nil
}

// Load reads, normalizes and validates the document at path.
func Load(path string) (*knowledge.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	doc, err := decode(b, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decode(b []byte, f format) (*knowledge.Document, error) {
	var doc knowledge.Document
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

func encode(doc knowledge.Document, f format) ([]byte, error) {
	switch f {
	case formatYAML:
		return yaml.Marshal(doc)
	default:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}
