package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"autozonepro/internal/storage"
)

// Storage держит courier details и packing list в памяти. Используется в тестах
// и при storage_driver: memory. Уникальность sales_order проверяется под тем же
// мьютексом, что и вставка, как это делает уникальный ключ в MySQL.
type Storage struct {
	mu           sync.RWMutex
	couriers     map[string]storage.CourierDetails // sales_order -> record
	packingLists []storage.PackingList
}

func New() *Storage {
	return &Storage{
		couriers: make(map[string]storage.CourierDetails),
	}
}

func (s *Storage) FindCourierBySalesOrder(ctx context.Context, salesOrder string) (*storage.CourierDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.couriers[salesOrder]
	if !ok {
		return nil, storage.ErrCourierNotFound
	}

	d.BoxSummary = append([]storage.BoxSummaryRow(nil), d.BoxSummary...)
	return &d, nil
}

func (s *Storage) CreateCourierDetails(ctx context.Context, d storage.CourierDetails) error {
	const op = "storage.memory.CreateCourierDetails"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.couriers[d.SalesOrder]; exists {
		return fmt.Errorf("%s: sales_order=%s: %w", op, d.SalesOrder, storage.ErrCourierExists)
	}

	d.BoxSummary = append([]storage.BoxSummaryRow(nil), d.BoxSummary...)
	s.couriers[d.SalesOrder] = d

	return nil
}

// CourierCount: сколько записей реально сохранено.
func (s *Storage) CourierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.couriers)
}

func (s *Storage) AddPackingList(pl storage.PackingList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packingLists = append(s.packingLists, pl)
}

func personFor(pl storage.PackingList, activity storage.Activity) string {
	switch activity {
	case storage.ActivityPacking:
		if pl.Packer == storage.PackerPlaceholder {
			return ""
		}
		return pl.Packer
	case storage.ActivityPicking:
		return pl.Picker
	case storage.ActivityVerify:
		return pl.ModifiedBy
	default:
		return ""
	}
}

func (s *Storage) GetActivityRows(ctx context.Context, activity storage.Activity, month, year int) ([]storage.ActivityRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []storage.ActivityRow
	for _, pl := range s.packingLists {
		if pl.DocStatus != 1 || int(pl.Date.Month()) != month || pl.Date.Year() != year {
			continue
		}

		person := personFor(pl, activity)
		if person == "" {
			continue
		}

		rows = append(rows, storage.ActivityRow{
			Person:   person,
			Activity: activity,
			Day:      pl.Date.Day(),
			Qty:      pl.TotalQty,
		})
	}

	return rows, nil
}

func (s *Storage) GetPerformancePersons(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, pl := range s.packingLists {
		if pl.Packer != "" && pl.Packer != storage.PackerPlaceholder {
			seen[pl.Packer] = struct{}{}
		}
		if pl.Picker != "" {
			seen[pl.Picker] = struct{}{}
		}
	}

	persons := make([]string, 0, len(seen))
	for p := range seen {
		persons = append(persons, p)
	}
	sort.Strings(persons)

	return persons, nil
}
