package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFailsOnBadConfig(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")

	assert.Equal(t, 1, run())
}

func TestRunFailsOnUnreachableDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("DB_TYPE", "oracle")
	t.Setenv("DB_DATABASE", filepath.Join(dir, "boerd.db"))
	t.Setenv("STORAGE_TYPE", "local")

	assert.Equal(t, 1, run())
}
