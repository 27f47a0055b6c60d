package port

import (
	"context"

	"ansuads/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns and their
// nested variants. It is an outbound port in hexagonal architecture.
// Implementations must apply every mutation atomically: a failed call leaves
// the stored state exactly as it was before the call.
type CampaignRepository interface {
	// List returns snapshot copies of all campaigns in insertion order,
	// variants included. Mutating the result does not affect storage.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns the campaign with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// Create persists a validated campaign, assigning the next id and
	// setting both timestamps. The input's ID field is ignored.
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	// Update merges the patch over the stored campaign, refreshes
	// updated_at and returns the merged record. The merged record is
	// re-validated before it is written.
	Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	// Delete removes the campaign and all its variants.
	Delete(ctx context.Context, id int64) error

	// CreateVariant appends a variant to the campaign, assigning the next
	// variant id within that campaign, and refreshes the parent's
	// updated_at.
	CreateVariant(ctx context.Context, campaignID int64, v *domain.Variant) (*domain.Variant, error)
	// DeleteVariant removes a variant and refreshes the parent's
	// updated_at. It returns domain.ErrNotFound for a missing campaign and
	// domain.ErrVariantNotFound for a missing variant.
	DeleteVariant(ctx context.Context, campaignID, variantID int64) error

	// Count returns the number of stored campaigns.
	Count(ctx context.Context) (int64, error)
	// Stats returns the dashboard aggregate over all stored campaigns.
	Stats(ctx context.Context) (*domain.Stats, error)

	// Seed bulk-inserts campaigns with their given ids, metrics and
	// variants. It is a no-op when any campaign already exists; bootstrap
	// data never overwrites user data.
	Seed(ctx context.Context, campaigns []domain.Campaign) error
}
