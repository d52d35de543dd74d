package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocateEnvFile returns the path of the env file named by filename
// (default .env). Relative names are looked up in the working directory
// and then in each parent; absolute names are only checked as given.
func LocateEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	candidates, err := envFileCandidates(filename)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("env file %q: %w", filename, os.ErrNotExist)
}

// envFileCandidates lists the paths to try, nearest first.
func envFileCandidates(filename string) ([]string, error) {
	if filepath.IsAbs(filename) {
		return []string{filepath.Clean(filename)}, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	var out []string
	for {
		out = append(out, filepath.Join(dir, filename))
		parent := filepath.Dir(dir)
		if parent == dir {
			return out, nil
		}
		dir = parent
	}
}
