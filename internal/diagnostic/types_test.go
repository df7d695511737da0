package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())
	assert.False(t, d.HasErrors())

	d.AddWarning("duplicate_value", `value "a" is listed twice`, "F", "Status")
	assert.NoError(t, d.Error(), "warnings alone do not fail validation")

	d.AddError("duplicate_field", `field "Status" is declared twice`, "F", "Status")
	d.AddError("empty_schema_name", "schema name is empty", "", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[F] Status: [duplicate_field] field "Status" is declared twice; [empty_schema_name] schema name is empty`,
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "ident_collision", Message: "clash", Schema: "F", Member: "my_field"}
	assert.Equal(t, `[F] my_field: [ident_collision] clash`, d.String())
	assert.Equal(t, "[F]: [empty_schema] no fields", Diagnostic{Code: "empty_schema", Message: "no fields", Schema: "F"}.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("empty_values", "treated as no values", "F", "Name")
	b.AddError("invalid_ident", "bad", "F", "!")
	b.AddWarning("w", "warn", "", "")

	a.Merge(b)

	assert.Equal(t, []string{"invalid_ident", "w", "empty_values"}, a.Codes())
	assert.Len(t, a.All(), 3)
	assert.Equal(t, DiagnosticError, a.All()[0].Severity)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
