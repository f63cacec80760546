package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "regenerate-events")
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	format := root.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	assert.NotNil(t, root.PersistentFlags().Lookup("db"))
}

func TestRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand("version", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	require.NoError(t, err)
	assert.Equal(t, "locationctl 1.0.0\n", out)
}

func TestCommandsRequireOneID(t *testing.T) {
	for _, name := range []string{"recompute", "progress", "regenerate-events", "history", "seed"} {
		t.Run(name, func(t *testing.T) {
			_, err := executeCommand(name)
			assert.Error(t, err)

			_, err = executeCommand(name, "a", "b")
			assert.Error(t, err)
		})
	}
}

func TestCommandsRejectMalformedIDs(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"recompute", "invalid rental id"},
		{"progress", "invalid rental id"},
		{"regenerate-events", "invalid rental id"},
		{"history", "invalid stage id"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			_, err := executeCommand(tt.command, "not-a-uuid")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSeedMissingPath(t *testing.T) {
	_, err := executeCommand("seed", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fixture")
}

func TestSeedValidatesBeforeConnecting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	fixture := `projects:
  - name: night-shift
locations:
  - name: Warehouse
rentals:
  - project: night-shift
    location: Lighthouse
    start_date: 2026-05-01
    end_date: 2026-05-10
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	_, err := executeCommand("seed", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown location")
}
