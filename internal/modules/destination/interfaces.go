package destination

import (
	"context"

	"travelhub/internal/domain"
)

// DestinationRepository — only the methods the destination service uses
type DestinationRepository interface {
	ListActive(ctx context.Context) ([]domain.Destination, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Popular(ctx context.Context, limit int) ([]domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	Update(ctx context.Context, d *domain.Destination) error
	Delete(ctx context.Context, id int64) error
}
