package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"autozonepro/internal/storage"
)

func (s *Storage) FindCourierBySalesOrder(ctx context.Context, salesOrder string) (*storage.CourierDetails, error) {
	const op = "storage.mysql.FindCourierBySalesOrder"

	stmt := `SELECT name, first_name, surname, full_name, tel_no, vehicle_no, sales_order, creation
		FROM courier_details WHERE sales_order = ? LIMIT 1`

	var d storage.CourierDetails
	err := s.db.QueryRowContext(ctx, stmt, salesOrder).Scan(&d.Name, &d.FirstName, &d.Surname, &d.FullName,
		&d.TelNo, &d.VehicleNo, &d.SalesOrder, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCourierNotFound
		}
		return nil, fmt.Errorf("%s: sales_order=%s: %w", op, salesOrder, err)
	}

	boxes, err := s.getBoxSummary(ctx, d.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	d.BoxSummary = boxes

	return &d, nil
}

func (s *Storage) getBoxSummary(ctx context.Context, parent string) ([]storage.BoxSummaryRow, error) {
	const op = "storage.mysql.getBoxSummary"

	rows, err := s.db.QueryContext(ctx, `SELECT idx, box_number, weight_kg, expense
		FROM box_summary WHERE parent = ? ORDER BY idx`, parent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	boxes := []storage.BoxSummaryRow{}
	for rows.Next() {
		var b storage.BoxSummaryRow
		if err := rows.Scan(&b.Idx, &b.BoxNumber, &b.WeightKg, &b.Expense); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		boxes = append(boxes, b)
	}

	return boxes, rows.Err()
}

// CreateCourierDetails пишет шапку и строки коробок в одной транзакции.
// Дубль по sales_order (уникальный ключ) возвращается как storage.ErrCourierExists.
func (s *Storage) CreateCourierDetails(ctx context.Context, d storage.CourierDetails) error {
	const op = "storage.mysql.CreateCourierDetails"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO courier_details (name, first_name, surname, full_name, tel_no, vehicle_no, sales_order, creation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.FirstName, d.Surname, d.FullName, d.TelNo, d.VehicleNo, d.SalesOrder, d.CreatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%s: sales_order=%s: %w", op, d.SalesOrder, storage.ErrCourierExists)
		}
		return fmt.Errorf("%s: insert courier_details sales_order=%s: %w", op, d.SalesOrder, err)
	}

	if len(d.BoxSummary) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO box_summary (parent, idx, box_number, weight_kg, expense)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("%s: prepare statement: %w", op, err)
		}
		defer stmt.Close()

		for _, b := range d.BoxSummary {
			if _, err := stmt.ExecContext(ctx, d.Name, b.Idx, b.BoxNumber, b.WeightKg, b.Expense); err != nil {
				return fmt.Errorf("%s: insert box_summary idx=%d: %w", op, b.Idx, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
