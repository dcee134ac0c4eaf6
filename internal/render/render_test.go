package render

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
)

func usersTable(t *testing.T) *schema.Table {
	t.Helper()
	table := schema.NewTable("users")
	assert.NilError(t, table.AddFields(
		schema.NewField("name", schema.FieldTypeText),
		schema.NewField("age", schema.FieldTypeInt),
	))
	assert.NilError(t, table.AddRow(data.C("name", "Ana"), data.C("age", 30)))
	assert.NilError(t, table.AddRow(data.C("age", 4), data.C("name", "Bo")))
	return table
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	err := PrintResult(&buf, TableResult(usersTable(t)))

	assert.NilError(t, err)
	want := "users: 2 rows\n" +
		"name (TEXT)  age (INT)\n" +
		"---          ---\n" +
		"Ana          30\n" +
		"Bo           4\n"
	assert.Equal(t, buf.String(), want)
}

func TestPrintMissingValue(t *testing.T) {
	table := usersTable(t)
	assert.NilError(t, table.AddField("email", schema.FieldTypeText))
	rows := table.FindMany(func(r data.Row) bool { return r.Value("name") == "Bo" }, 1)
	var buf bytes.Buffer

	res := RowsResult(table, rows)
	res.Message = "matches"
	assert.NilError(t, PrintResult(&buf, res))

	want := "matches\n" +
		"users: 1 row\n" +
		"name (TEXT)  age (INT)  email (TEXT)\n" +
		"---          ---        ---\n" +
		"Bo           4          -\n"
	assert.Equal(t, buf.String(), want)
}

func TestSummaryUsesThousandsSeparator(t *testing.T) {
	res := &Result{Table: "big", Rows: make([]data.Row, 1234)}

	assert.Equal(t, res.Summary(), "big: 1,234 rows")
}

func TestPrintEmptySchema(t *testing.T) {
	var buf bytes.Buffer

	assert.NilError(t, PrintResult(&buf, TableResult(schema.NewTable("empty"))))
	assert.Equal(t, buf.String(), "empty: 0 rows\n")
}
