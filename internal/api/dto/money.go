package dto

import "github.com/shopspring/decimal"

// Money 回應用金額欄位，JSON 固定輸出兩位小數字串
// decimal.Decimal 預設會把 150.00 輸出成 "150"，金額欄位一律經過這層
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
