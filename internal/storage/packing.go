package storage

import "time"

type Activity string

const (
	ActivityPacking  Activity = "Packing"
	ActivityPicking  Activity = "Picking"
	ActivityVerify   Activity = "Verify"
	ActivityDispatch Activity = "Dispatch"
)

// Activities: порядок строк внутри блока сотрудника в отчёте.
var Activities = []Activity{ActivityPacking, ActivityPicking, ActivityVerify, ActivityDispatch}

// PackerPlaceholder: значение по умолчанию в селекте упаковщика, реальным сотрудником не является.
const PackerPlaceholder = "Select"

// ActivityRow: одна строка выборки по packing list за день месяца.
type ActivityRow struct {
	Person   string   `json:"person"`
	Activity Activity `json:"activity"`
	Day      int      `json:"day_num"`
	Qty      *int64   `json:"qty"`
}

// PackingList: то, что нужно отчёту из документа Packing List.
type PackingList struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"custom_date"`
	Packer     string    `json:"custom_packer"`
	Picker     string    `json:"custom_picker"`
	ModifiedBy string    `json:"modified_by"`
	TotalQty   *int64    `json:"total_qty"`
	DocStatus  int       `json:"docstatus"`
}
