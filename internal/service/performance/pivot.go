package performance

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"autozonepro/internal/storage"
)

type Row struct {
	Person   string
	Activity storage.Activity
	Days     []int // Days[0] = day_1
	Total    int
	DailyAvg float64

	// заполняются только на строке Verify
	TotalAll3       *int
	OverallDailyAvg *float64
	TotalPacking    *int
	TotalPicking    *int
	TotalVerified   *int
	TotalDispatched *int

	IsFirstRow bool
	IsLastRow  bool
}

// Day возвращает значение day_N, 1-based.
func (r Row) Day(day int) int {
	if day < 1 || day > len(r.Days) {
		return 0
	}
	return r.Days[day-1]
}

func (r Row) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(r.Days)+12)

	m["person"] = r.Person
	m["activity"] = r.Activity
	for i, qty := range r.Days {
		m[dayField(i+1)] = qty
	}
	m["total"] = r.Total
	m["daily_avg"] = r.DailyAvg
	m["total_all_3"] = r.TotalAll3
	m["overall_daily_avg"] = r.OverallDailyAvg
	m["total_packing"] = r.TotalPacking
	m["total_picking"] = r.TotalPicking
	m["total_verified"] = r.TotalVerified
	m["total_dispatched"] = r.TotalDispatched
	m["is_first_row"] = r.IsFirstRow
	m["is_last_row"] = r.IsLastRow

	return json.Marshal(m)
}

type gridKey struct {
	person   string
	activity storage.Activity
}

func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// average: total / days до одного знака, половины к чётному (0.25 -> 0.2, 1.25 -> 1.2).
func average(total, days int) float64 {
	if days == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(int64(days))).
		RoundBank(1).
		InexactFloat64()
}

// BuildRows раскладывает строки активностей в плотную сетку сотрудник × активность × день.
// Сотрудники берутся только из persons; строки по остальным отбрасываются.
func BuildRows(persons []string, rows []storage.ActivityRow, numDays int) []Row {
	universe := uniqueSorted(persons)

	grid := make(map[gridKey]*Row, len(universe)*len(storage.Activities))
	for _, person := range universe {
		for _, activity := range storage.Activities {
			grid[gridKey{person, activity}] = &Row{
				Person:   person,
				Activity: activity,
				Days:     make([]int, numDays),
			}
		}
	}

	for _, r := range rows {
		cell, ok := grid[gridKey{r.Person, r.Activity}]
		if !ok || r.Day < 1 || r.Day > numDays || r.Qty == nil {
			continue
		}
		cell.Days[r.Day-1] += int(*r.Qty)
	}

	result := make([]Row, 0, len(grid))
	for _, person := range universe {
		result = append(result, personBlock(grid, person, numDays)...)
	}

	return result
}

func personBlock(grid map[gridKey]*Row, person string, numDays int) []Row {
	block := make([]Row, 0, len(storage.Activities))
	totals := make(map[storage.Activity]int, len(storage.Activities))

	for i, activity := range storage.Activities {
		row := *grid[gridKey{person, activity}]

		for _, qty := range row.Days {
			row.Total += qty
		}
		row.DailyAvg = average(row.Total, numDays)

		// имя только на первой строке блока, как в Excel
		if i != 0 {
			row.Person = ""
		}
		row.IsFirstRow = i == 0

		totals[activity] = row.Total
		block = append(block, row)
	}

	for i := range block {
		if block[i].Activity != storage.ActivityVerify {
			continue
		}

		packing := totals[storage.ActivityPacking]
		picking := totals[storage.ActivityPicking]
		verified := totals[storage.ActivityVerify]
		dispatched := totals[storage.ActivityDispatch]

		// Dispatch в "Total of All 3" не входит
		all3 := packing + picking + verified
		overall := average(all3, numDays)

		block[i].TotalAll3 = &all3
		block[i].OverallDailyAvg = &overall
		block[i].TotalPacking = &packing
		block[i].TotalPicking = &picking
		block[i].TotalVerified = &verified
		block[i].TotalDispatched = &dispatched
		break
	}

	if len(block) > 0 {
		block[len(block)-1].IsLastRow = true
	}

	return block
}

func uniqueSorted(persons []string) []string {
	seen := make(map[string]struct{}, len(persons))
	out := make([]string, 0, len(persons))

	for _, p := range persons {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	sort.Strings(out)
	return out
}
