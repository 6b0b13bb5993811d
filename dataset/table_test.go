package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Data
// ============================================================================

var ordersCSV = []byte("Order ID,Region,Quantity,Revenue,Notes\n" +
	"ORD-1,Europe,2,59.98,fast shipping\n" +
	"ORD-2,Asia Pacific,1,349.99,\n" +
	"ORD-3,Europe,5,62.50,N/A\n")

var ordersJSON = []byte(`[
	{"region": "Europe", "revenue": 59.98, "quantity": 2},
	{"region": "Asia Pacific", "revenue": 349.99, "quantity": 1, "notes": "late"}
]`)

// ============================================================================
// CSV
// ============================================================================

func TestFromCSVTypesCells(t *testing.T) {
	table, err := FromCSV("orders", ordersCSV)
	require.NoError(t, err)

	assert.Equal(t, "orders", table.Name())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"Order ID", "Region", "Quantity", "Revenue", "Notes"}, table.Columns())

	// Numeric cells become float64, text stays string, empty/N-A becomes nil.
	assert.Equal(t, 2.0, table.Value(0, "Quantity"))
	assert.Equal(t, 349.99, table.Value(1, "Revenue"))
	assert.Equal(t, "Europe", table.Value(0, "Region"))
	assert.Nil(t, table.Value(1, "Notes"))
	assert.Nil(t, table.Value(2, "Notes"))
}

func TestFromCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", []byte("")},
		{"header only", []byte("a,b,c\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCSV("x", tt.data)
			assert.Error(t, err)
		})
	}
}

func TestFromCSVSkipsMalformedRows(t *testing.T) {
	data := []byte("a,b\n1,2\n\"unterminated\n3,4\n")
	table, err := FromCSV("x", data)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1.0, table.Value(0, "a"))
}

// ============================================================================
// JSON
// ============================================================================

func TestFromJSONColumnUnion(t *testing.T) {
	table, err := FromJSON("orders", ordersJSON)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	// Columns are sorted per record, unseen keys appended.
	assert.Equal(t, []string{"quantity", "region", "revenue", "notes"}, table.Columns())
	assert.True(t, table.HasColumn("notes"))
	assert.Nil(t, table.Value(0, "notes"))
	assert.Equal(t, "late", table.Value(1, "notes"))
}

func TestFromJSONErrors(t *testing.T) {
	_, err := FromJSON("x", []byte(`{"not": "an array"}`))
	assert.Error(t, err)

	_, err = FromJSON("x", []byte(`[]`))
	assert.Error(t, err)
}

// ============================================================================
// Accessors
// ============================================================================

func TestColumnValuesSkipsNulls(t *testing.T) {
	table, err := FromCSV("orders", ordersCSV)
	require.NoError(t, err)

	notes := table.ColumnValues("Notes")
	assert.Equal(t, []any{"fast shipping"}, notes)

	assert.Nil(t, table.ColumnValues("No Such Column"))
}

func TestValueOutOfRange(t *testing.T) {
	table, err := FromCSV("orders", ordersCSV)
	require.NoError(t, err)
	assert.Nil(t, table.Value(-1, "Region"))
	assert.Nil(t, table.Value(99, "Region"))
}
