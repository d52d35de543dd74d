package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirasaad/propdesc/internal/cli"
	"github.com/amirasaad/propdesc/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with stdin set to input and returns stdout and stderr.
func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("PROPDESC_OUTPUT_COLOR", "false")

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(strings.NewReader(input), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestKeys(t *testing.T) {
	out, _, err := run(t, `{"a":1,"b":2}`, "keys", "writable", "-o", "json")
	require.NoError(t, err)

	var keys []string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestKeys_UnknownFlag(t *testing.T) {
	out, logs, err := run(t, `{"a":1}`, "keys", "value", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
	assert.Contains(t, logs, "unrecognized descriptor flag")
}

func TestKeys_FlagNamesAreExact(t *testing.T) {
	for _, name := range []string{"Writable", "WRITABLE", " writable"} {
		t.Run(name, func(t *testing.T) {
			out, logs, err := run(t, `{"a":1,"b":2}`, "keys", name, "-o", "json")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, out)
			assert.Contains(t, logs, "unrecognized descriptor flag")
		})
	}
}

func TestKeys_Table(t *testing.T) {
	out, _, err := run(t, `{"alpha":1,"beta":2}`, "keys", "enumerable")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}

func TestLock_SnapshotOutput(t *testing.T) {
	out, _, err := run(t, `{"a":1,"b":2}`, "lock", "a", "-o", "json", "--out-snapshot")
	require.NoError(t, err)

	var snap record.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	r, err := record.FromSnapshot(snap)
	require.NoError(t, err)

	d, ok := r.Descriptor("a")
	require.True(t, ok)
	assert.False(t, d.Writable)
	assert.True(t, d.Enumerable)
	assert.True(t, d.Configurable)
	d, _ = r.Descriptor("b")
	assert.True(t, d.Writable)
}

func TestLock_MissingKeyYAML(t *testing.T) {
	out, _, err := run(t, "a: 1\n", "lock", "x", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"a": 1, "x": nil}, got)
}

func TestFreeze_Table(t *testing.T) {
	out, _, err := run(t, `{"a":1}`, "freeze")
	require.NoError(t, err)
	assert.Contains(t, out, "Level: frozen")
	assert.Equal(t, 1, strings.Count(out, "true"), "only enumerable stays set on a frozen copy")
}

func TestFrozen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"open", `{"a":1}`, `{"anyFrozen":false,"level":"open","extensible":true,"sealed":false,"frozen":false}`},
		{"non-extensible", `{"extensible":false,"properties":[{"key":"a","value":1,"writable":true,"enumerable":true,"configurable":true}]}`,
			`{"anyFrozen":true,"level":"non-extensible","extensible":false,"sealed":false,"frozen":false}`},
		{"sealed", `{"extensible":false,"properties":[{"key":"a","value":1,"writable":true,"enumerable":true,"configurable":false}]}`,
			`{"anyFrozen":true,"level":"sealed","extensible":false,"sealed":true,"frozen":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"frozen", "-o", "json"}
			if tt.name != "open" {
				args = append(args, "--in-snapshot")
			}
			out, _, err := run(t, tt.input, args...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestDescribe_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rec.yml")
	require.NoError(t, os.WriteFile(path, []byte("z: 1\na: two\n"), 0o600))

	out, _, err := run(t, "", "describe", "-f", path, "-o", "json")
	require.NoError(t, err)

	var snap record.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.True(t, snap.Extensible)
	require.Len(t, snap.Properties, 2)
	assert.Equal(t, "z", snap.Properties[0].Key)
	assert.Equal(t, "a", snap.Properties[1].Key)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

	out, _, err := run(t, `{"a":1}`, "keys", "configurable", "--config", path)
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, out)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
	}{
		{"not an object", `[1,2]`, []string{"keys", "writable"}},
		{"bad output format", `{}`, []string{"keys", "writable", "-o", "xml"}},
		{"missing file", ``, []string{"freeze", "-f", "/does/not/exist.json"}},
		{"missing argument", `{}`, []string{"lock"}},
		{"duplicate snapshot key", `{"properties":[{"key":"a"},{"key":"a"}]}`, []string{"describe", "--in-snapshot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.input, tt.args...)
			require.Error(t, err)
		})
	}
}
