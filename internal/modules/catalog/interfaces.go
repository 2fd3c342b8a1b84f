package catalog

import (
	"context"

	"studiorental/internal/domain"
)

type Repository interface {
	GetSpaces(ctx context.Context) ([]domain.Space, error)
	GetEquipment(ctx context.Context) ([]domain.Equipment, error)
	GetProps(ctx context.Context) ([]domain.Prop, error)
	CreateSpace(ctx context.Context, s *domain.Space) error
	CreateEquipment(ctx context.Context, e *domain.Equipment) error
	CreateProp(ctx context.Context, p *domain.Prop) error
	SetSpaceAvailability(ctx context.Context, id string, available bool) error
	SetEquipmentAvailability(ctx context.Context, id string, available bool) error
	SetPropAvailability(ctx context.Context, id string, available bool) error
}
