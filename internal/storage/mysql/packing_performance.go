package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"autozonepro/internal/storage"
)

type activitySource struct {
	column string
	extra  string
}

// Откуда брать исполнителя для каждой активности. Verify берётся из modified_by, другого поля пока нет.
// Для Dispatch источника нет, строки не выбираются.
var activitySources = map[storage.Activity]activitySource{
	storage.ActivityPacking: {column: "custom_packer", extra: " AND custom_packer != ?"},
	storage.ActivityPicking: {column: "custom_picker"},
	storage.ActivityVerify:  {column: "modified_by"},
}

func (s *Storage) GetActivityRows(ctx context.Context, activity storage.Activity, month, year int) ([]storage.ActivityRow, error) {
	const op = "storage.mysql.GetActivityRows"

	src, ok := activitySources[activity]
	if !ok {
		return nil, nil
	}

	// CAST округляет дробные total_qty до целого, ячейки отчёта целочисленные
	stmt := fmt.Sprintf(`
		SELECT %[1]s AS person, DAY(custom_date) AS day_num, CAST(total_qty AS SIGNED) AS qty
		FROM packing_list
		WHERE docstatus = 1
		  AND MONTH(custom_date) = ?
		  AND YEAR(custom_date) = ?
		  AND %[1]s IS NOT NULL
		  AND %[1]s != ''%[2]s`, src.column, src.extra)

	args := []interface{}{month, year}
	if src.extra != "" {
		args = append(args, storage.PackerPlaceholder)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: activity=%s: %w", op, activity, err)
	}
	defer rows.Close()

	var result []storage.ActivityRow
	for rows.Next() {
		var (
			r   storage.ActivityRow
			qty sql.NullInt64
		)
		if err := rows.Scan(&r.Person, &r.Day, &qty); err != nil {
			return nil, fmt.Errorf("%s: scan activity=%s: %w", op, activity, err)
		}
		r.Activity = activity
		if qty.Valid {
			r.Qty = &qty.Int64
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

// GetPerformancePersons: все упаковщики и сборщики за всё время, не только за выбранный месяц.
func (s *Storage) GetPerformancePersons(ctx context.Context) ([]string, error) {
	const op = "storage.mysql.GetPerformancePersons"

	stmt := `
		SELECT DISTINCT custom_packer AS person
		FROM packing_list
		WHERE custom_packer IS NOT NULL
		  AND custom_packer != ''
		  AND custom_packer != ?

		UNION

		SELECT DISTINCT custom_picker AS person
		FROM packing_list
		WHERE custom_picker IS NOT NULL
		  AND custom_picker != ''

		ORDER BY person`

	rows, err := s.db.QueryContext(ctx, stmt, storage.PackerPlaceholder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var persons []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		persons = append(persons, p)
	}

	return persons, rows.Err()
}
