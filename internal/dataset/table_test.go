package dataset

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberColumn(t *testing.T, table *Table, name string, values ...Cell) *Column {
	t.Helper()
	col, err := table.AddColumn(name, KindNumber, values)
	require.NoError(t, err)
	return col
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		cells    []Cell
		expected float64
		ok       bool
	}{
		{
			name:     "odd count",
			cells:    []Cell{Number(3), Number(1), Number(2)},
			expected: 2,
			ok:       true,
		},
		{
			name:     "even count averages the middle pair",
			cells:    []Cell{Number(1), Number(2), Number(3), Number(10)},
			expected: 2.5,
			ok:       true,
		},
		{
			name:     "nulls are ignored",
			cells:    []Cell{Number(5), Null(), Number(7), Null()},
			expected: 6,
			ok:       true,
		},
		{
			name:  "all null",
			cells: []Cell{Null(), Null()},
			ok:    false,
		},
		{
			name:  "empty",
			cells: []Cell{},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New()
			col := numberColumn(t, table, "v", tt.cells...)
			median, ok := col.Median()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, median, 1e-9)
			}
		})
	}
}

func TestMedianNonNumericColumn(t *testing.T) {
	table := New()
	col, err := table.AddColumn("s", KindString, []Cell{String("a")})
	require.NoError(t, err)

	_, ok := col.Median()
	assert.False(t, ok)
}

func TestFillNulls(t *testing.T) {
	table := New()
	col := numberColumn(t, table, "v", Number(1), Null(), Number(3), Null())

	filled := col.FillNulls(Number(2))

	assert.Equal(t, 2, filled)
	assert.Zero(t, col.NullCount())
	assert.Equal(t, 2.0, col.Cells[1].Num)
	assert.Equal(t, 2.0, col.Cells[3].Num)
}

func TestCastDate(t *testing.T) {
	layouts := []string{"2006-01-02", "02/01/2006"}

	table := New()
	col, err := table.AddColumn("d", KindString, []Cell{
		String("2020-03-01"),
		String("15/04/2021"),
		String("not a date"),
		Null(),
	})
	require.NoError(t, err)

	col.CastDate(layouts)

	assert.Equal(t, KindDate, col.Kind)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), col.Cells[0].Date)
	assert.Equal(t, time.Date(2021, 4, 15, 0, 0, 0, 0, time.UTC), col.Cells[1].Date)
	assert.True(t, col.Cells[2].Null, "unparseable value becomes null")
	assert.True(t, col.Cells[3].Null)
}

func TestCastCategory(t *testing.T) {
	table := New()
	col, err := table.AddColumn("c", KindString, []Cell{
		String("single"), String("married"), Null(), String("married"), String("divorced"),
	})
	require.NoError(t, err)

	col.CastCategory()

	assert.Equal(t, KindCategory, col.Kind)
	assert.Equal(t, []string{"divorced", "married", "single"}, col.Levels)
}

func TestDropIgnoresAbsentColumns(t *testing.T) {
	table := New()
	numberColumn(t, table, "a", Number(1))
	numberColumn(t, table, "b", Number(2))
	numberColumn(t, table, "c", Number(3))

	table.Drop("b", "no_such_column")

	assert.Equal(t, []string{"a", "c"}, table.Names())
	_, ok := table.Column("b")
	assert.False(t, ok)

	// index still resolves remaining columns after the drop
	col, ok := table.Column("c")
	require.True(t, ok)
	assert.Equal(t, 3.0, col.Cells[0].Num)
}

func TestRename(t *testing.T) {
	table := New()
	numberColumn(t, table, "job", Number(1))

	assert.True(t, table.Rename("job", "ocupacion"))
	assert.False(t, table.Rename("missing", "x"))

	assert.True(t, table.Has("ocupacion"))
	assert.False(t, table.Has("job"))
}

func TestRenameAllPassThrough(t *testing.T) {
	table := New()
	numberColumn(t, table, "y", Number(1))
	numberColumn(t, table, "custom", Number(2))

	table.RenameAll(map[string]string{"y": "suscribio", "job": "ocupacion"})

	assert.Equal(t, []string{"suscribio", "custom"}, table.Names())
}

func TestNormalizeNames(t *testing.T) {
	table := New()
	numberColumn(t, table, "Contact Date", Number(1))
	numberColumn(t, table, "AGE", Number(2))

	table.NormalizeNames(func(name string) string {
		return strings.ReplaceAll(strings.ToLower(name), " ", "_")
	})

	assert.Equal(t, []string{"contact_date", "age"}, table.Names())
	assert.True(t, table.Has("age"))
}

func TestFilterRows(t *testing.T) {
	table := New()
	numberColumn(t, table, "a", Number(1), Number(2), Number(3), Number(4))
	numberColumn(t, table, "b", Number(10), Number(20), Number(30), Number(40))

	dropped := table.FilterRows(func(row int) bool { return row%2 == 0 })

	assert.Equal(t, 2, dropped)
	assert.Equal(t, 2, table.NumRows())

	b, _ := table.Column("b")
	assert.Equal(t, 10.0, b.Cells[0].Num)
	assert.Equal(t, 30.0, b.Cells[1].Num)
}

func TestAddColumnRejectsDuplicatesAndRaggedLengths(t *testing.T) {
	table := New()
	numberColumn(t, table, "a", Number(1), Number(2))

	_, err := table.AddColumn("a", KindNumber, []Cell{Number(3), Number(4)})
	assert.Error(t, err)

	_, err = table.AddColumn("b", KindNumber, []Cell{Number(3)})
	assert.Error(t, err)
}

func TestSetColumnReplacesOrAppends(t *testing.T) {
	table := New()
	numberColumn(t, table, "a", Number(1), Number(2))

	// replaces an existing column in place, resetting kind and levels
	col, err := table.SetColumn("a", KindString, []Cell{String("x"), String("y")})
	require.NoError(t, err)
	assert.Equal(t, KindString, col.Kind)
	assert.Equal(t, "x", col.Cells[0].Str)
	assert.Equal(t, []string{"a"}, table.Names())

	// appends when the column is absent
	_, err = table.SetColumn("b", KindNumber, []Cell{Number(3), Number(4)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Names())

	// rejects a ragged replacement
	_, err = table.SetColumn("a", KindNumber, []Cell{Number(9)})
	assert.Error(t, err)
}
