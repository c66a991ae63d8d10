package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRows_SourceLineNumbering(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"email", "nombre"},
		{"a@x.com", "Ana"},
		{"b@x.com", "Bea"},
	}
	rows := MapRows(records)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].SourceLine)
	assert.Equal(t, 3, rows[1].SourceLine)
	assert.Equal(t, "Ana", rows[0].Get("nombre"))
	assert.Equal(t, "b@x.com", rows[1].Get("email"))
}

func TestMapRows_ShortRow(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"email", "nombre", "ciudad"},
		{"a@x.com"},
	}
	rows := MapRows(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "a@x.com", rows[0].Get("email"))
	assert.Equal(t, "", rows[0].Get("nombre"))
	assert.Equal(t, "", rows[0].Get("ciudad"))
}

func TestMapRows_ExtraFieldsIgnored(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"email"},
		{"a@x.com", "sobra", "y esto también"},
	}
	rows := MapRows(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "a@x.com", rows[0].Get("email"))
}

func TestMapRows_QuotedHeaderCleaned(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{`"email"`, `'nombre'`, `  ciudad  `},
		{"a@x.com", "Ana", "Madrid"},
	}
	rows := MapRows(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "a@x.com", rows[0].Get("email"))
	assert.Equal(t, "Ana", rows[0].Get("nombre"))
	assert.Equal(t, "Madrid", rows[0].Get("ciudad"))
}

func TestMapRows_UnknownColumn(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"email"},
		{"a@x.com"},
	}
	rows := MapRows(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Get("telefono"))
}

func TestMapRows_TooFewRecords(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MapRows(nil))
	assert.Nil(t, MapRows([][]string{{"email"}}))
}
