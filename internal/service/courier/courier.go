package courier

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"autozonepro/internal/storage"
)

type Storage interface {
	FindCourierBySalesOrder(ctx context.Context, salesOrder string) (*storage.CourierDetails, error)
	CreateCourierDetails(ctx context.Context, d storage.CourierDetails) error
}

type Request struct {
	SalesOrder  string          `json:"sales_order" validate:"required"`
	FirstName   string          `json:"first_name" validate:"required"`
	Surname     string          `json:"surname" validate:"required"`
	TelNo       string          `json:"tel_no" validate:"required"`
	VehicleNo   string          `json:"vehicle_no" validate:"required"`
	PackingList string          `json:"packing_list,omitempty"`
	BoxRows     json.RawMessage `json:"box_rows,omitempty"`
}

type Result struct {
	Name          string `json:"name"`
	AlreadyExists bool   `json:"already_exists"`
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	validate *validator.Validate
	now      func() time.Time
	newName  func() string
}

func NewService(log *slog.Logger, storage Storage) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	return &Service{
		log:      log,
		storage:  storage,
		validate: validate,
		now:      time.Now,
		newName:  uuid.NewString,
	}
}

func (s *Service) validateRequest(req Request) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, ve.Field())
	}

	return &ValidationError{Fields: fields}
}

// FullName склеивает имя и фамилию через пробел и обрезает пробелы по краям.
func FullName(firstName, surname string) string {
	return strings.TrimSpace(firstName + " " + surname)
}

// Create создаёт Courier Details для заказа. Если запись для sales_order уже есть,
// возвращает её имя и ничего не пишет.
func (s *Service) Create(ctx context.Context, req Request) (Result, error) {
	const op = "service.courier.Create"

	log := s.log.With(slog.String("op", op), slog.String("sales_order", req.SalesOrder))
	log.Info("create_courier_details called", slog.String("packing_list", req.PackingList))

	if err := s.validateRequest(req); err != nil {
		log.Warn("invalid courier details request", slog.String("error", err.Error()))
		return Result{}, err
	}

	existing, err := s.storage.FindCourierBySalesOrder(ctx, req.SalesOrder)
	switch {
	case err == nil:
		log.Info("courier details already exist", slog.String("name", existing.Name))
		return Result{Name: existing.Name, AlreadyExists: true}, nil
	case !errors.Is(err, storage.ErrCourierNotFound):
		log.Error("failed to look up courier details", slog.String("error", err.Error()))
		return Result{}, &CreationError{SalesOrder: req.SalesOrder, Err: err}
	}

	boxes, err := ParseBoxRows(req.BoxRows)
	if err != nil {
		// без коробок запись всё равно нужна
		log.Warn("error parsing box_rows, creating without box summary", slog.String("error", err.Error()))
		boxes = nil
	}

	d := storage.CourierDetails{
		Name:       s.newName(),
		FirstName:  req.FirstName,
		Surname:    req.Surname,
		FullName:   FullName(req.FirstName, req.Surname),
		TelNo:      req.TelNo,
		VehicleNo:  req.VehicleNo,
		SalesOrder: req.SalesOrder,
		CreatedAt:  s.now(),
		BoxSummary: boxes,
	}

	err = s.storage.CreateCourierDetails(ctx, d)
	if errors.Is(err, storage.ErrCourierExists) {
		// параллельный запрос успел раньше, отдаём его запись
		winner, findErr := s.storage.FindCourierBySalesOrder(ctx, req.SalesOrder)
		if findErr == nil {
			log.Info("courier details created concurrently", slog.String("name", winner.Name))
			return Result{Name: winner.Name, AlreadyExists: true}, nil
		}
		err = errors.Join(err, findErr)
	}
	if err != nil {
		log.Error("error creating courier details", slog.String("error", err.Error()))
		return Result{}, &CreationError{SalesOrder: req.SalesOrder, Err: err}
	}

	log.Info("courier details created", slog.String("name", d.Name), slog.Int("boxes", len(boxes)))

	return Result{Name: d.Name, AlreadyExists: false}, nil
}
