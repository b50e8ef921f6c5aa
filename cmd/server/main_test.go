package main

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copyrightLine = "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:           "0",
		UploadMaxBytes: 1024,
		DBType:         "sqlite-pure",
		DBDatabase:     filepath.Join(dir, "boerd.db"),
		DataDir:        dir,
		UploadsPath:    "uploads",
		StorageType:    "local",
		LogLevel:       "error",
	}
}

func TestRunReturnsConnectError(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DBType = "oracle"

	err := run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestRunReturnsStorageErrorAfterMigrating(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.StorageType = "ftp"

	err := run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create storage adapter")

	// migrations ran before the failure
	_, statErr := os.Stat(cfg.DBDatabase)
	assert.NoError(t, statErr)
}

func TestLicenseHeadersNameProject(t *testing.T) {
	root := filepath.Join("..", "..")
	checked := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		agpl := false
		var holders []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "//") {
				break
			}
			if strings.Contains(line, "GNU Affero General Public License") {
				agpl = true
			}
			if strings.Contains(line, "Copyright (c)") {
				holders = append(holders, line)
			}
		}
		if !agpl {
			return scanner.Err()
		}

		checked++
		assert.Len(t, holders, 2, path)
		for _, line := range holders {
			assert.Contains(t, line, copyrightLine, path)
		}
		return scanner.Err()
	})
	require.NoError(t, err)
	assert.Positive(t, checked)
}
