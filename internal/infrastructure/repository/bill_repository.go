package repository

import (
	"context"
	"errors"

	"github.com/keinsta/si-bills-api/internal/domain/entity"
	domainRepo "github.com/keinsta/si-bills-api/internal/domain/repository"
	"github.com/keinsta/si-bills-api/pkg/pagination"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	// Products are created in the same transaction via the association.
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_products.position ASC")
		}).
		First(&bill, "serial_number = ?", serialNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_products.position ASC")
		}).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&bills).Error
	return bills, total, err
}

func (r *billRepository) GetNextSerialNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Bill{}).Count(&count).Error
	return int(count) + 1, err
}
