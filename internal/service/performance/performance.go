package performance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"autozonepro/internal/storage"
)

var ErrInvalidPeriod = errors.New("invalid report period")

type Storage interface {
	GetActivityRows(ctx context.Context, activity storage.Activity, month, year int) ([]storage.ActivityRow, error)
	GetPerformancePersons(ctx context.Context) ([]string, error)
}

// Filters: фильтры отчёта, нулевые значения означают текущий месяц/год.
type Filters struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type Report struct {
	Month   int      `json:"month"`
	Year    int      `json:"year"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"result"`
}

type Service struct {
	log     *slog.Logger
	storage Storage
	now     func() time.Time
}

func NewService(log *slog.Logger, storage Storage) *Service {
	return &Service{log: log, storage: storage, now: time.Now}
}

func (s *Service) resolve(f Filters) (Filters, error) {
	today := s.now()
	if f.Month == 0 {
		f.Month = int(today.Month())
	}
	if f.Year == 0 {
		f.Year = today.Year()
	}

	if f.Month < 1 || f.Month > 12 {
		return f, fmt.Errorf("%w: month %d", ErrInvalidPeriod, f.Month)
	}
	if f.Year < 1 {
		return f, fmt.Errorf("%w: year %d", ErrInvalidPeriod, f.Year)
	}

	return f, nil
}

// Execute строит отчёт Packing Performance за месяц: колонки и строки в порядке вывода.
func (s *Service) Execute(ctx context.Context, f Filters) (*Report, error) {
	const op = "service.performance.Execute"

	f, err := s.resolve(f)
	if err != nil {
		return nil, err
	}

	numDays := DaysInMonth(f.Year, f.Month)

	var (
		byActivity = make([][]storage.ActivityRow, len(storage.Activities))
		persons    []string
	)

	// выборки независимые, результат складывается по слотам, поэтому порядок детерминирован
	g, gCtx := errgroup.WithContext(ctx)
	for i, activity := range storage.Activities {
		g.Go(func() error {
			rows, err := s.storage.GetActivityRows(gCtx, activity, f.Month, f.Year)
			if err != nil {
				return fmt.Errorf("%s rows: %w", activity, err)
			}
			byActivity[i] = rows
			return nil
		})
	}
	g.Go(func() error {
		var err error
		persons, err = s.storage.GetPerformancePersons(gCtx)
		if err != nil {
			return fmt.Errorf("persons: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var all []storage.ActivityRow
	for _, rows := range byActivity {
		all = append(all, rows...)
	}

	rows := BuildRows(persons, all, numDays)

	s.log.Debug("packing performance built",
		slog.String("op", op),
		slog.Int("month", f.Month),
		slog.Int("year", f.Year),
		slog.Int("persons", len(rows)/len(storage.Activities)),
		slog.Int("source_rows", len(all)),
	)

	return &Report{
		Month:   f.Month,
		Year:    f.Year,
		Columns: Columns(numDays),
		Rows:    rows,
	}, nil
}
