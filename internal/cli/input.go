package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amirasaad/propdesc/pkg/record"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when no --file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass --file or pipe a document on stdin")

// readRecord loads the input document as a record.
func (a *App) readRecord() (*record.Record, error) {
	data, name, err := a.readInput()
	if err != nil {
		return nil, err
	}
	format := a.detectFormat(name, data)
	a.logger.Debug("decoding input", "source", name, "format", format, "snapshot", a.cfg.Input.Snapshot)

	if a.cfg.Input.Snapshot {
		var snap record.Snapshot
		if err := unmarshal(format, data, &snap); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot from %s: %w", name, err)
		}
		return record.FromSnapshot(snap)
	}

	r := record.New()
	if err := unmarshal(format, data, r); err != nil {
		return nil, fmt.Errorf("failed to decode record from %s: %w", name, err)
	}
	return r, nil
}

func (a *App) readInput() ([]byte, string, error) {
	if a.file != "" && a.file != "-" {
		data, err := os.ReadFile(a.file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", a.file, err)
		}
		return data, a.file, nil
	}
	if a.interactive() {
		return nil, "", ErrNoInput
	}
	data, err := io.ReadAll(a.in)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, "stdin", nil
}

func (a *App) detectFormat(name string, data []byte) string {
	if f := a.cfg.Input.Format; f != "auto" {
		return f
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return "json"
	}
	return "yaml"
}

func unmarshal(format string, data []byte, v any) error {
	if format == "yaml" {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}
