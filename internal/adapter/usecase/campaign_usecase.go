package usecase

import (
	"context"
	"strings"

	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
)

// CampaignUseCase provides business logic for campaign management. It
// orchestrates the repository to implement the CampaignUseCase port; the
// repository enforces validation and atomicity, this layer shapes drafts
// into full records.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListCampaigns returns all campaigns in insertion order.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

// GetCampaign returns one campaign or domain.ErrNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// CreateCampaign persists a new campaign from the draft. Metrics start at
// zero, the variant list starts empty and an unset status defaults to draft.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, draft port.CampaignDraft) (*domain.Campaign, error) {
	status := draft.Status
	if status == "" {
		status = domain.StatusDraft
	}
	c := &domain.Campaign{
		Name:      strings.TrimSpace(draft.Name),
		Objective: draft.Objective,
		Budget:    draft.Budget,
		Status:    status,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Metrics:   domain.Metrics{},
		Variants:  []domain.Variant{},
	}
	return u.repo.Create(ctx, c)
}

// UpdateCampaign shallow-merges the patch over the stored record.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	return u.repo.Update(ctx, id, patch)
}

// DeleteCampaign removes the campaign and all its variants.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}

// CreateVariant appends a variant to an existing campaign.
func (u *CampaignUseCase) CreateVariant(ctx context.Context, campaignID int64, draft port.VariantDraft) (*domain.Variant, error) {
	v := &domain.Variant{
		Name:         draft.Name,
		CreativeText: draft.CreativeText,
		CreativeURL:  draft.CreativeURL,
	}
	return u.repo.CreateVariant(ctx, campaignID, v)
}

// DeleteVariant removes a variant from an existing campaign.
func (u *CampaignUseCase) DeleteVariant(ctx context.Context, campaignID, variantID int64) error {
	return u.repo.DeleteVariant(ctx, campaignID, variantID)
}

// Stats recomputes the dashboard aggregate from stored campaigns.
func (u *CampaignUseCase) Stats(ctx context.Context) (*domain.Stats, error) {
	return u.repo.Stats(ctx)
}
