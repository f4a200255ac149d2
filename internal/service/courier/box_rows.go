package courier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"autozonepro/internal/storage"
)

type boxRowInput struct {
	BoxNumber *decimal.Decimal `json:"box_number"`
	WeightKg  *decimal.Decimal `json:"weight_kg"`
	Expense   *decimal.Decimal `json:"expense"`
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ParseBoxRows принимает либо JSON-массив строк коробок, либо JSON-строку, внутри которой
// лежит такой массив (так их присылает форма Packing List). Отсутствующие поля = 0.
func ParseBoxRows(raw json.RawMessage) ([]storage.BoxSummaryRow, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("decode box_rows string: %w", err)
		}
		if strings.TrimSpace(encoded) == "" {
			return nil, nil
		}
		raw = []byte(encoded)
	}

	var items []boxRowInput
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode box_rows: %w", err)
	}

	rows := make([]storage.BoxSummaryRow, 0, len(items))
	for i, item := range items {
		rows = append(rows, storage.BoxSummaryRow{
			Idx:       i + 1,
			BoxNumber: orZero(item.BoxNumber).IntPart(),
			WeightKg:  orZero(item.WeightKg),
			Expense:   orZero(item.Expense),
		})
	}

	return rows, nil
}
