package repository

import (
	"context"
	"errors"

	"studiorental/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetSpaces(ctx context.Context) ([]domain.Space, error) {
	var out []domain.Space
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) GetEquipment(ctx context.Context) ([]domain.Equipment, error) {
	var out []domain.Equipment
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) GetProps(ctx context.Context) ([]domain.Prop, error) {
	var out []domain.Prop
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) CreateSpace(ctx context.Context, s *domain.Space) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) CreateEquipment(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *CatalogRepository) CreateProp(ctx context.Context, p *domain.Prop) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) SetSpaceAvailability(ctx context.Context, id string, available bool) error {
	return r.setAvailability(ctx, &domain.Space{}, id, available)
}

func (r *CatalogRepository) SetEquipmentAvailability(ctx context.Context, id string, available bool) error {
	return r.setAvailability(ctx, &domain.Equipment{}, id, available)
}

func (r *CatalogRepository) SetPropAvailability(ctx context.Context, id string, available bool) error {
	return r.setAvailability(ctx, &domain.Prop{}, id, available)
}

func (r *CatalogRepository) setAvailability(ctx context.Context, model any, id string, available bool) error {
	res := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
