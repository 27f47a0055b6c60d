package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansuads/internal/core/domain"
)

func draft(name string, budget float64, status string) *domain.Campaign {
	return &domain.Campaign{
		Name:     name,
		Budget:   budget,
		Status:   status,
		Variants: []domain.Variant{},
	}
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	var last int64
	for _, name := range []string{"one", "two", "three"} {
		c, err := repo.Create(ctx, draft(name, 100, domain.StatusDraft))
		require.NoError(t, err)
		require.Greater(t, c.ID, last)
		last = c.ID
	}

	campaigns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, []string{"one", "two", "three"},
		[]string{campaigns[0].Name, campaigns[1].Name, campaigns[2].Name})
}

func TestCreateRejectsInvalid(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	cases := []*domain.Campaign{
		draft("", 100, domain.StatusDraft),
		draft("   ", 100, domain.StatusDraft),
		draft("ok", -1, domain.StatusDraft),
		draft("ok", 100, "archived"),
		{Name: "ok", Status: domain.StatusDraft, Metrics: domain.Metrics{Cost: -5}},
	}
	for _, c := range cases {
		_, err := repo.Create(ctx, c)
		require.ErrorIs(t, err, domain.ErrInvalidCampaign)
	}

	// Nothing was persisted by the failed calls.
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateTouchesOnlyPatchedFields(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	orig, err := repo.Create(ctx, &domain.Campaign{
		Name:      "Spring Push",
		Objective: "Awareness",
		Budget:    750,
		Status:    domain.StatusDraft,
		StartDate: "2025-03-01",
		EndDate:   "2025-04-30",
	})
	require.NoError(t, err)

	budget := 1200.0
	updated, err := repo.Update(ctx, orig.ID, domain.CampaignPatch{Budget: &budget})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, updated.Budget)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, orig.Name, updated.Name)
	assert.Equal(t, orig.Objective, updated.Objective)
	assert.Equal(t, orig.Status, updated.Status)
	assert.Equal(t, orig.StartDate, updated.StartDate)
	assert.Equal(t, orig.EndDate, updated.EndDate)
	assert.Equal(t, orig.Metrics, updated.Metrics)
	assert.False(t, updated.UpdatedAt.Before(orig.UpdatedAt))
}

func TestUpdateCannotChangeID(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("fixed", 10, domain.StatusDraft))
	require.NoError(t, err)

	name := "renamed"
	updated, err := repo.Update(ctx, c.ID, domain.CampaignPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.ID)
}

func TestUpdateMissingCampaign(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))

	name := "ghost"
	_, err := repo.Update(context.Background(), 42, domain.CampaignPatch{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("valid", 10, domain.StatusDraft))
	require.NoError(t, err)

	bad := -5.0
	_, err = repo.Update(ctx, c.ID, domain.CampaignPatch{Budget: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidCampaign)

	// The failed update left the record untouched.
	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Budget)
}

func TestDeleteThenGet(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("short lived", 1, domain.StatusDraft))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.Get(ctx, c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrNotFound)
}

func TestVariantRoundTrip(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("ab test", 50, domain.StatusActive))
	require.NoError(t, err)

	before, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)

	v, err := repo.CreateVariant(ctx, c.ID, &domain.Variant{Name: "headline B"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)

	require.NoError(t, repo.DeleteVariant(ctx, c.ID, v.ID))

	after, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Variants, after.Variants)
}

func TestVariantIDsScopedToCampaign(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, draft("a", 1, domain.StatusDraft))
	require.NoError(t, err)
	b, err := repo.Create(ctx, draft("b", 1, domain.StatusDraft))
	require.NoError(t, err)

	v1, err := repo.CreateVariant(ctx, a.ID, &domain.Variant{Name: "a1"})
	require.NoError(t, err)
	v2, err := repo.CreateVariant(ctx, a.ID, &domain.Variant{Name: "a2"})
	require.NoError(t, err)
	v3, err := repo.CreateVariant(ctx, b.ID, &domain.Variant{Name: "b1"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), v1.ID)
	assert.Equal(t, int64(2), v2.ID)
	assert.Equal(t, int64(1), v3.ID)
}

func TestVariantErrors(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.CreateVariant(ctx, 99, &domain.Variant{Name: "orphan"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.DeleteVariant(ctx, 99, 1), domain.ErrNotFound)

	c, err := repo.Create(ctx, draft("real", 1, domain.StatusDraft))
	require.NoError(t, err)
	require.ErrorIs(t, repo.DeleteVariant(ctx, c.ID, 7), domain.ErrVariantNotFound)
}

func TestDeleteCampaignRemovesVariants(t *testing.T) {
	database := testDB(t)
	repo := NewCampaignRepository(database)
	ctx := context.Background()

	c, err := repo.Create(ctx, draft("parent", 1, domain.StatusDraft))
	require.NoError(t, err)
	_, err = repo.CreateVariant(ctx, c.ID, &domain.Variant{Name: "child"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.ID))

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM variants`).Scan(&n))
	assert.Zero(t, n)
}

func TestStats(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	s, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, *s)

	_, err = repo.Create(ctx, draft("active one", 1000, domain.StatusActive))
	require.NoError(t, err)
	_, err = repo.Create(ctx, draft("paused one", 250.50, domain.StatusPaused))
	require.NoError(t, err)
	require.NoError(t, repo.Seed(ctx, nil)) // no-op, store not empty

	cost := domain.Metrics{Cost: 99.5}
	_, err = repo.Update(ctx, 1, domain.CampaignPatch{Metrics: &cost})
	require.NoError(t, err)

	s, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.TotalCampaigns)
	assert.Equal(t, int64(1), s.ActiveCampaigns)
	assert.InDelta(t, 1250.50, s.TotalBudget, 1e-9)
	assert.InDelta(t, 99.5, s.TotalSpend, 1e-9)
}

// TestCampaignLifecycle walks the reference scenario: create, activate,
// delete.
func TestCampaignLifecycle(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	c, err := repo.Create(ctx, &domain.Campaign{
		Name:      "Q1 Launch",
		Budget:    1000,
		StartDate: "2025-01-01",
		EndDate:   "2025-03-31",
		Status:    domain.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, domain.Metrics{}, c.Metrics)
	assert.Empty(t, c.Variants)

	status := domain.StatusActive
	updated, err := repo.Update(ctx, 1, domain.CampaignPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, updated.Status)
	assert.Equal(t, 1000.0, updated.Budget)

	require.NoError(t, repo.Delete(ctx, 1))
	campaigns, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, draft("user data", 10, domain.StatusDraft))
	require.NoError(t, err)

	err = repo.Seed(ctx, []domain.Campaign{{ID: 7, Name: "demo", Status: domain.StatusActive}})
	require.NoError(t, err)

	campaigns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "user data", campaigns[0].Name)
}

func TestSeedKeepsGivenIDs(t *testing.T) {
	repo := NewCampaignRepository(testDB(t))
	ctx := context.Background()

	err := repo.Seed(ctx, []domain.Campaign{{
		ID:     3,
		Name:   "demo",
		Status: domain.StatusActive,
		Variants: []domain.Variant{
			{ID: 1, Name: "v1"},
			{ID: 2, Name: "v2"},
		},
	}})
	require.NoError(t, err)

	c, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	require.Len(t, c.Variants, 2)

	// The next created campaign continues past the seeded id.
	next, err := repo.Create(ctx, draft("fresh", 1, domain.StatusDraft))
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)
}
