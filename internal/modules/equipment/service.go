package equipment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	GetAll(ctx context.Context) ([]domain.Equipment, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	SetMaintenanceDue(ctx context.Context, id string, dueMs int64) error
}

type Service struct {
	equipment EquipmentRepository
	log       zerolog.Logger
}

func NewService(equipment EquipmentRepository, log zerolog.Logger) *Service {
	return &Service{equipment: equipment, log: log}
}

// List returns the catalog ordered by name with derived maintenance flags.
func (s *Service) List(ctx context.Context) ([]EquipmentView, error) {
	items, err := s.equipment.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]EquipmentView, 0, len(items))
	for _, e := range items {
		out = append(out, EquipmentView{
			Equipment:       e,
			NeedsService:    e.NeedsService(now),
			MaintenanceSoon: e.MaintenanceSoon(now),
		})
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*EquipmentView, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	now := time.Now()
	return &EquipmentView{
		Equipment:       *e,
		NeedsService:    e.NeedsService(now),
		MaintenanceSoon: e.MaintenanceSoon(now),
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if strings.TrimSpace(req.Name) == "" || req.PricePerHour < 0 {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		PricePerHour:   req.PricePerHour,
		IsAvailable:    req.IsAvailable,
		MaintenanceDue: req.MaintenanceDue,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}

	s.log.Info().Str("equipment_id", e.ID).Str("name", e.Name).Msg("equipment created")
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	if strings.TrimSpace(req.Name) == "" || req.PricePerHour < 0 {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		ID:             id,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		PricePerHour:   req.PricePerHour,
		IsAvailable:    req.IsAvailable,
		MaintenanceDue: req.MaintenanceDue,
	}
	if err := s.equipment.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.equipment.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Str("equipment_id", id).Bool("available", available).Msg("equipment availability changed")
	return nil
}

func (s *Service) SetMaintenanceDue(ctx context.Context, id string, dueMs int64) error {
	if err := s.equipment.SetMaintenanceDue(ctx, id, dueMs); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// MaintenanceAlerts lists items that are overdue or due within the warning
// window, for the staff dashboard.
func (s *Service) MaintenanceAlerts(ctx context.Context) ([]EquipmentView, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentView, 0)
	for _, v := range views {
		if v.NeedsService || v.MaintenanceSoon {
			out = append(out, v)
		}
	}
	return out, nil
}
