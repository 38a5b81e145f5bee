package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `150.5`, 150.5},
		{"integer", `42`, 42},
		{"numeric string", `"150.5"`, 150.5},
		{"padded string", `" 99 "`, 99},
		{"garbage string", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"negative", `-10`, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a.Float())
		})
	}
}

func TestAmountInsideDocument(t *testing.T) {
	var e Expense
	err := json.Unmarshal([]byte(`{"description":"فاتورة","amount":"75.25","date":"2025-01-01"}`), &e)
	require.NoError(t, err)
	assert.Equal(t, 75.25, e.Amount.Float())
}
