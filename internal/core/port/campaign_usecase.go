package port

import (
	"context"

	"ansuads/internal/core/domain"
)

// CampaignUseCase defines the campaign management operations exposed to the
// delivery layer. This is the primary port into the data store side of the
// application.
type CampaignUseCase interface {
	// ListCampaigns returns all campaigns in insertion order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns one campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign validates the draft and persists a new campaign with
	// zeroed metrics, no variants and a freshly assigned id.
	CreateCampaign(ctx context.Context, draft CampaignDraft) (*domain.Campaign, error)
	// UpdateCampaign shallow-merges the patch over the stored record.
	// Fields absent from the patch keep their prior values.
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	// DeleteCampaign removes the campaign and its variants.
	DeleteCampaign(ctx context.Context, id int64) error

	// CreateVariant appends a variant to an existing campaign.
	CreateVariant(ctx context.Context, campaignID int64, draft VariantDraft) (*domain.Variant, error)
	// DeleteVariant removes a variant from an existing campaign.
	DeleteVariant(ctx context.Context, campaignID, variantID int64) error

	// Stats recomputes the dashboard aggregate from stored campaigns.
	Stats(ctx context.Context) (*domain.Stats, error)
}

// CampaignDraft carries the caller-supplied fields for a new campaign.
// Everything else (id, metrics, variants, timestamps) is set by the store.
// An empty status defaults to draft.
type CampaignDraft struct {
	Name      string
	Objective string
	Budget    float64
	Status    string
	StartDate string
	EndDate   string
}

// VariantDraft carries the caller-supplied fields for a new variant.
type VariantDraft struct {
	Name         string
	CreativeText string
	CreativeURL  string
}
