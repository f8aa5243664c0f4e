package etgrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGrainType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CategoryCode
	}{
		{"known value", "rice", 1},
		{"case insensitive", "Wheat", 0},
		{"mixed case", "SoyBean", 4},
		{"unknown falls back to wheat", "unknown-grain", 0},
		{"empty falls back to wheat", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeGrainType(tt.raw))
		})
	}
}

func TestEncodeActivityStatus(t *testing.T) {
	assert.Equal(t, CategoryCode(0), EncodeActivityStatus("active"))
	assert.Equal(t, CategoryCode(1), EncodeActivityStatus("INACTIVE"))
	assert.Equal(t, CategoryCode(2), EncodeActivityStatus("completed"))

	// 未知值回退到 active
	assert.Equal(t, DefaultActivityStatusCode, EncodeActivityStatus("paused"))
	assert.Equal(t, DefaultActivityStatusCode, EncodeActivityStatus(""))
}

func TestEncodeSoldStatus(t *testing.T) {
	assert.Equal(t, CategoryCode(0), EncodeSoldStatus("sold"))
	assert.Equal(t, CategoryCode(1), EncodeSoldStatus("not_sold"))
	assert.Equal(t, CategoryCode(0), EncodeSoldStatus("Sold"))

	// 未知值回退到 not_sold
	assert.Equal(t, DefaultSoldStatusCode, EncodeSoldStatus("pending"))
	assert.Equal(t, DefaultSoldStatusCode, EncodeSoldStatus(""))
}

func TestCategoryTablesReturnsCopy(t *testing.T) {
	tables := CategoryTables()
	assert.Equal(t, 0, tables["grain_type"]["wheat"])
	assert.Equal(t, 4, tables["grain_type"]["soybean"])

	// 修改副本不影响后续编码
	tables["grain_type"]["wheat"] = 99
	assert.Equal(t, CategoryCode(0), EncodeGrainType("wheat"))
	assert.Equal(t, 0, CategoryTables()["grain_type"]["wheat"])
}
