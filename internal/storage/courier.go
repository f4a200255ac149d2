package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

type CourierDetails struct {
	Name       string          `json:"name"`
	FirstName  string          `json:"first_name"`
	Surname    string          `json:"surname"`
	FullName   string          `json:"full_name"`
	TelNo      string          `json:"tel_no"`
	VehicleNo  string          `json:"vehicle_no"`
	SalesOrder string          `json:"sales_order"`
	CreatedAt  time.Time       `json:"creation"`
	BoxSummary []BoxSummaryRow `json:"box_summary"`
}

type BoxSummaryRow struct {
	Idx       int             `json:"idx"`
	BoxNumber int64           `json:"box_number"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	Expense   decimal.Decimal `json:"expense"`
}
