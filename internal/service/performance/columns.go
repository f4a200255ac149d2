package performance

import "strconv"

type Column struct {
	Label     string `json:"label"`
	Fieldname string `json:"fieldname"`
	Fieldtype string `json:"fieldtype"`
	Width     int    `json:"width"`
	Precision int    `json:"precision,omitempty"`
}

const (
	fieldData  = "Data"
	fieldInt   = "Int"
	fieldFloat = "Float"
)

func dayField(day int) string {
	return "day_" + strconv.Itoa(day)
}

func Columns(numDays int) []Column {
	columns := make([]Column, 0, numDays+10)

	columns = append(columns,
		Column{Label: "Employee Name", Fieldname: "person", Fieldtype: fieldData, Width: 140},
		Column{Label: "Activity", Fieldname: "activity", Fieldtype: fieldData, Width: 110},
	)

	for day := 1; day <= numDays; day++ {
		columns = append(columns, Column{Label: strconv.Itoa(day), Fieldname: dayField(day), Fieldtype: fieldInt, Width: 38})
	}

	columns = append(columns,
		Column{Label: "Total", Fieldname: "total", Fieldtype: fieldInt, Width: 65},
		Column{Label: "Daily Avg", Fieldname: "daily_avg", Fieldtype: fieldFloat, Width: 75, Precision: 1},
		Column{Label: "Total of All 3", Fieldname: "total_all_3", Fieldtype: fieldInt, Width: 100},
		Column{Label: "Overall Daily Avg", Fieldname: "overall_daily_avg", Fieldtype: fieldFloat, Width: 110, Precision: 1},
		Column{Label: "Total Packing", Fieldname: "total_packing", Fieldtype: fieldInt, Width: 100},
		Column{Label: "Total Picking", Fieldname: "total_picking", Fieldtype: fieldInt, Width: 100},
		Column{Label: "Total Verified", Fieldname: "total_verified", Fieldtype: fieldInt, Width: 100},
		Column{Label: "Total Dispatched", Fieldname: "total_dispatched", Fieldtype: fieldInt, Width: 110},
	)

	return columns
}
