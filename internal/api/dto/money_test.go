package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalTwoDecimals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"150", `"150.00"`},
		{"150.00", `"150.00"`},
		{"49.9", `"49.90"`},
		{"0", `"0.00"`},
		{"12.345", `"12.35"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(NewMoney(decimal.RequireFromString(tt.input)))
		require.NoError(t, err)
		require.Equal(t, tt.want, string(got))
	}
}

func TestMoneyUnmarshal(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &m))
	require.True(t, m.Equal(decimal.RequireFromString("12.34")))
}
