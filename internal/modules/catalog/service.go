package catalog

import (
	"context"
	"errors"

	"studiorental/internal/domain"

	"gorm.io/gorm"
)

// Service assembles the catalog snapshot the wizard and the public site work
// from, and carries the admin mutations behind the ops surface.
type Service struct {
	repo     Repository
	currency string
}

func NewService(repo Repository, currency string) *Service {
	return &Service{repo: repo, currency: currency}
}

// GetCatalog loads all three lists and returns an immutable snapshot. The
// wizard calls this once per session.
func (s *Service) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	spaces, err := s.repo.GetSpaces(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.repo.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	props, err := s.repo.GetProps(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewCatalog(spaces, equipment, props, s.currency), nil
}

func (s *Service) CreateSpace(ctx context.Context, req CreateSpaceRequest) (*domain.Space, error) {
	sp := &domain.Space{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		AreaSqm:      req.AreaSqm,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Available:    req.Available,
	}
	if err := s.repo.CreateSpace(ctx, sp); err != nil {
		return nil, createErr(err)
	}
	return sp, nil
}

func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	eq := &domain.Equipment{
		ID:           req.ID,
		Name:         req.Name,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Available:    req.Available,
	}
	if err := s.repo.CreateEquipment(ctx, eq); err != nil {
		return nil, createErr(err)
	}
	return eq, nil
}

func (s *Service) CreateProp(ctx context.Context, req CreatePropRequest) (*domain.Prop, error) {
	pr := &domain.Prop{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		PricePerDay: req.PricePerDay,
		Available:   req.Available,
	}
	if err := s.repo.CreateProp(ctx, pr); err != nil {
		return nil, createErr(err)
	}
	return pr, nil
}

// createErr maps the translated unique-constraint violation to the module
// sentinel; item ids are client-chosen slugs and can collide.
func createErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// SetAvailability flips the advisory availability flag on any catalog item.
func (s *Service) SetAvailability(ctx context.Context, kind, id string, available bool) error {
	switch kind {
	case "spaces":
		return s.repo.SetSpaceAvailability(ctx, id, available)
	case "equipment":
		return s.repo.SetEquipmentAvailability(ctx, id, available)
	case "props":
		return s.repo.SetPropAvailability(ctx, id, available)
	default:
		return ErrUnknownKind
	}
}
