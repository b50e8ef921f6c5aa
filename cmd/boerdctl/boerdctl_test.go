package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes boerdctl against a fresh sqlite database in dir
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_DATABASE", filepath.Join(dir, "boerd.db"))
	t.Setenv("DEFAULT_USERNAME", "me")

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedDemo(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "seed", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user me")
	assert.Contains(t, out, "Created board reading-list with 3 blocks")

	out, err = run(t, dir, "seed", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "User me already exists")
	assert.Contains(t, out, "skipping demo data")

	out, err = run(t, dir, "user", "show", "me")
	require.NoError(t, err)
	assert.Contains(t, out, `"channelsCount": 3`)
}

func TestUserCreate(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "migrate")
	require.NoError(t, err)

	out, err := run(t, dir, "user", "create", "ana", "--display-name", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user ana")

	_, err = run(t, dir, "user", "create", "ana")
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := run(t, t.TempDir(), "schema")
	require.NoError(t, err)
	for _, table := range []string{"users", "blocks", "boards", "connections"} {
		assert.Contains(t, out, "=== Table: "+table+" ===")
	}
}

func TestHealth(t *testing.T) {
	out, err := run(t, t.TempDir(), "health")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "healthy"`)
}
