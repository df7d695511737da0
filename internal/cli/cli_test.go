package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldsclass/internal/decl"
)

const s3YAML = `version: "1"
package: s3fields
schemas:
  - name: F
    fields:
      Buckets:
      Name:
      Status: [Succeeded, Failed]
    consts:
      Region: us-east-1
`

const warnYAML = `package: p
schemas:
  - name: F
    fields:
      Status: [a, a]
`

const badYAML = `package: p
schemas:
  - name: F
    fields:
      Status: [a]
      Status2: [""]
`

func newTestApp(t *testing.T, files map[string]string) (*bytes.Buffer, afero.Fs, func(args ...string) error) {
	t.Helper()

	fsys := mustMemFs(t, files)

	var out bytes.Buffer

	// A fresh application per run: kingpin keeps repeatable flag values.
	run := func(args ...string) error {
		app := New(context.Background(), &out, fsys)
		_, err := app.Parse(append([]string{"--log.level=error"}, args...))

		return err
	}

	return &out, fsys, run
}

func TestGen(t *testing.T) {
	_, fsys, run := newTestApp(t, map[string]string{"decl/s3.yaml": s3YAML})

	require.NoError(t, run("gen", "-f", "decl/s3.yaml"))

	content, err := afero.ReadFile(fsys, "decl/s3_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(content), "package s3fields")
	assert.Contains(t, string(content), "var F = struct {")
	assert.Contains(t, string(content), "type FStatusValues struct")
}

func TestGen_Overrides(t *testing.T) {
	_, fsys, run := newTestApp(t, map[string]string{"s3.yaml": s3YAML})

	require.NoError(t, run("gen", "-f", "s3.yaml",
		"--out", "gen", "--package", "keys", "--filename", "keys.go", "--no-comments"))

	content, err := afero.ReadFile(fsys, "gen/keys.go")
	require.NoError(t, err)
	assert.Contains(t, string(content), "package keys")
	assert.NotContains(t, string(content), "holds the declared field names")
}

func TestGen_DryRun(t *testing.T) {
	out, fsys, run := newTestApp(t, map[string]string{"decl/s3.yaml": s3YAML})

	require.NoError(t, run("gen", "-f", "decl/s3.yaml", "--dry-run"))

	assert.Contains(t, out.String(), "// decl/s3_gen.go\n// Code generated by fieldsgen. DO NOT EDIT.")

	exists, err := afero.Exists(fsys, "decl/s3_gen.go")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGen_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no sources", []string{"gen"}, "no declarations given"},
		{"missing file", []string{"gen", "-f", "missing.yaml"}, "missing.yaml"},
		{"invalid declarations", []string{"gen", "-f", "bad.yaml"}, "invalid declarations in bad.yaml"},
		{"watch and dry-run", []string{"gen", "-f", "s3.yaml", "--watch", "--dry-run"}, "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, run := newTestApp(t, map[string]string{"s3.yaml": s3YAML, "bad.yaml": badYAML})

			err := run(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, _, run := newTestApp(t, map[string]string{"s3.yaml": s3YAML})

		require.NoError(t, run("check", "-f", "s3.yaml"))
		assert.Equal(t, "1 file(s), 0 error(s), 0 warning(s)\n", out.String())
	})

	t.Run("warnings", func(t *testing.T) {
		out, _, run := newTestApp(t, map[string]string{"w.yaml": warnYAML})

		require.NoError(t, run("check", "-f", "w.yaml"))
		assert.Contains(t, out.String(), "w.yaml: warning: [F] Status: [duplicate_value]")
		assert.Contains(t, out.String(), "1 file(s), 0 error(s), 1 warning(s)")
	})

	t.Run("strict", func(t *testing.T) {
		_, _, run := newTestApp(t, map[string]string{"w.yaml": warnYAML})

		err := run("check", "-f", "w.yaml", "--strict")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 warning(s)")
	})

	t.Run("errors", func(t *testing.T) {
		out, _, run := newTestApp(t, map[string]string{"bad.yaml": badYAML})

		err := run("check", "-f", "bad.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error(s)")
		assert.Contains(t, out.String(), "bad.yaml: error: [F] Status2: [empty_value]")
	})
}

func TestDump(t *testing.T) {
	out, _, run := newTestApp(t, map[string]string{"s3.yaml": s3YAML})

	require.NoError(t, run("dump", "-f", "s3.yaml"))

	want := `F (s3.yaml)
  Buckets
  Name
  Status {"Failed", "Succeeded"}
    val.Succeeded = "Succeeded"
    val.Failed = "Failed"
  Region = "us-east-1" (const)
`
	assert.Equal(t, want, out.String())
}

func TestDump_Spew(t *testing.T) {
	out, _, run := newTestApp(t, map[string]string{"s3.yaml": s3YAML})

	require.NoError(t, run("dump", "-f", "s3.yaml", "--spew"))

	got := out.String()
	assert.Contains(t, got, "(*fields.Schema)({")
	assert.NotContains(t, got, "F{Buckets", "the String form hides the fields")
	assert.NotContains(t, got, "0x", "pointer addresses make the dump unstable")

	for _, want := range []string{`"Buckets"`, `"Status"`, `"Succeeded"`, `"Failed"`, `"Region"`, `"us-east-1"`} {
		assert.Contains(t, got, want)
	}
}

func TestVersion(t *testing.T) {
	out, _, run := newTestApp(t, nil)

	require.NoError(t, run("version"))
	assert.Regexp(t, `^fieldsgen \S+\n$`, out.String())
}

func TestWatchPaths(t *testing.T) {
	src := sourceFlags{files: []string{"a.yaml"}}
	files, err := src.load(mustMemFs(t, map[string]string{"a.yaml": s3YAML}))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml"}, watchPaths(files))
}

func mustMemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}

	return fsys
}

func TestNewEnvVarsWithPrefix(t *testing.T) {
	vars := NewEnvVarsWithPrefix(EnvVarPrefix)
	assert.Equal(t, "FIELDSGEN_LOG_LEVEL", vars.LogLevel)
	assert.Equal(t, "FIELDSGEN_FILES", vars.Files)

	assert.Equal(t, "X_OUT", NewEnvVarsWithPrefix("X_").Out)
	assert.Equal(t, "OUT", NewEnvVarsWithPrefix("").Out)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger("debug", format)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	_, err := NewLogger("loud", "console")
	require.Error(t, err)

	_, err = NewLogger("info", "xml")
	require.Error(t, err)
}

func TestFmt(t *testing.T) {
	out, fsys, run := newTestApp(t, map[string]string{"w.yaml": warnYAML})

	err := run("fmt", "-f", "w.yaml", "--check")
	require.Error(t, err)
	assert.Equal(t, "w.yaml\n", out.String())

	require.NoError(t, run("fmt", "-f", "w.yaml"))

	formatted, err := afero.ReadFile(fsys, "w.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(formatted), `version: "1"`)
	assert.Contains(t, string(formatted), "Status: [a, a]")

	out.Reset()
	require.NoError(t, run("fmt", "-f", "w.yaml", "--check"))
	assert.Empty(t, out.String())
}

func TestFmt_KeepsComments(t *testing.T) {
	const commented = `# Job declarations.
package: p
schemas:
  - name: F
    fields:
      Status:  [a, b] # terminal states
`

	_, fsys, run := newTestApp(t, map[string]string{"c.yaml": commented})

	require.NoError(t, run("fmt", "-f", "c.yaml"))

	formatted, err := afero.ReadFile(fsys, "c.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(formatted), "# Job declarations.")
	assert.Contains(t, string(formatted), "Status: [a, b] # terminal states")
}

func TestFmt_RefusesToDropComments(t *testing.T) {
	const commented = `package: p
schemas:
  - name: F
    fields:
      Status:
        - a # first
        - b
`

	_, fsys, run := newTestApp(t, map[string]string{"c.yaml": commented})

	err := run("fmt", "-f", "c.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, decl.ErrCommentsDropped)
	assert.Contains(t, err.Error(), "c.yaml")

	unchanged, err := afero.ReadFile(fsys, "c.yaml")
	require.NoError(t, err)
	assert.Equal(t, commented, string(unchanged))
}

func TestFmt_ParseError(t *testing.T) {
	_, _, run := newTestApp(t, map[string]string{"broken.yaml": "schemas: {"})

	err := run("fmt", "-f", "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
