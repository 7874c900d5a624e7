package repository

import (
	"context"

	"github.com/keinsta/si-bills-api/internal/domain/entity"
	"github.com/keinsta/si-bills-api/pkg/pagination"
)

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	// Create stores a bill together with its products
	Create(ctx context.Context, bill *entity.Bill) error
	// GetBySerialNumber retrieves a bill with its products, or nil when absent
	GetBySerialNumber(ctx context.Context, serialNumber string) (*entity.Bill, error)
	// List returns bills ordered newest first, with the total count
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// GetNextSerialNumber returns the next sequence number for serial assignment
	GetNextSerialNumber(ctx context.Context) (int, error)
}
