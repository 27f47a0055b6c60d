package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ansuads/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository on the embedded
// SQLite database. Every mutation runs in its own transaction so a failed
// call leaves the stored state untouched.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const campaignCols = `id, name, objective, budget, status, start_date, end_date,
	impressions, clicks, ctr, conversions, cost, created_at, updated_at`

func scanCampaign(scanner interface{ Scan(...any) error }) (*domain.Campaign, error) {
	var c domain.Campaign
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Objective, &c.Budget, &c.Status,
		&c.StartDate, &c.EndDate,
		&c.Metrics.Impressions, &c.Metrics.Clicks, &c.Metrics.CTR,
		&c.Metrics.Conversions, &c.Metrics.Cost,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Variants = []domain.Variant{}
	return &c, nil
}

func (r *CampaignRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// List returns all campaigns with their variants. Campaign ids only grow, so
// ordering by id reproduces insertion order.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+campaignCols+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	index := map[int64]int{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		index[c.ID] = len(campaigns)
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	vrows, err := r.db.QueryContext(ctx,
		`SELECT campaign_id, id, name, creative_text, creative_url, created_at
		 FROM variants ORDER BY campaign_id, id`)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var v domain.Variant
		if err := vrows.Scan(&v.CampaignID, &v.ID, &v.Name, &v.CreativeText, &v.CreativeURL, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		if i, ok := index[v.CampaignID]; ok {
			campaigns[i].Variants = append(campaigns[i].Variants, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	return campaigns, nil
}

// Get returns one campaign with its variants, or domain.ErrNotFound.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return getCampaign(ctx, r.db, id)
}

func getCampaign(ctx context.Context, q querier, id int64) (*domain.Campaign, error) {
	row := q.QueryRowContext(ctx, `SELECT `+campaignCols+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c.Variants, err = variantsFor(ctx, q, id); err != nil {
		return nil, err
	}
	return c, nil
}

func variantsFor(ctx context.Context, q querier, campaignID int64) ([]domain.Variant, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT campaign_id, id, name, creative_text, creative_url, created_at
		 FROM variants WHERE campaign_id = ? ORDER BY id`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get variants: %w", err)
	}
	defer rows.Close()

	variants := []domain.Variant{}
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.CampaignID, &v.ID, &v.Name, &v.CreativeText, &v.CreativeURL, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// Create persists a validated campaign and assigns the next id. SQLite picks
// max(id)+1 for an INTEGER PRIMARY KEY, which is exactly the assignment rule
// the rest of the system expects.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := *c
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO campaigns
			 (name, objective, budget, status, start_date, end_date,
			  impressions, clicks, ctr, conversions, cost, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, c.Objective, c.Budget, c.Status, c.StartDate, c.EndDate,
			c.Metrics.Impressions, c.Metrics.Clicks, c.Metrics.CTR,
			c.Metrics.Conversions, c.Metrics.Cost, now, now)
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		out.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.CreatedAt, out.UpdatedAt = now, now
	out.Variants = []domain.Variant{}
	return &out, nil
}

// Update shallow-merges the patch over the stored record, re-validates the
// merged result and refreshes updated_at.
func (r *CampaignRepository) Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		cur, err := getCampaign(ctx, tx, id)
		if err != nil {
			return err
		}
		patch.Apply(cur)
		cur.ID = id
		if err := cur.Validate(); err != nil {
			return err
		}
		cur.UpdatedAt = time.Now().UTC()
		_, err = tx.ExecContext(ctx,
			`UPDATE campaigns SET name = ?, objective = ?, budget = ?, status = ?,
			 start_date = ?, end_date = ?, impressions = ?, clicks = ?, ctr = ?,
			 conversions = ?, cost = ?, updated_at = ? WHERE id = ?`,
			cur.Name, cur.Objective, cur.Budget, cur.Status,
			cur.StartDate, cur.EndDate,
			cur.Metrics.Impressions, cur.Metrics.Clicks, cur.Metrics.CTR,
			cur.Metrics.Conversions, cur.Metrics.Cost, cur.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the campaign; variants go with it via ON DELETE CASCADE.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete campaign: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// CreateVariant appends a variant to the campaign. Variant ids restart at 1
// per campaign and follow the same max+1 rule as campaign ids.
func (r *CampaignRepository) CreateVariant(ctx context.Context, campaignID int64, v *domain.Variant) (*domain.Variant, error) {
	now := time.Now().UTC()
	out := *v
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := campaignExists(ctx, tx, campaignID); err != nil {
			return err
		}
		var next int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(id), 0) + 1 FROM variants WHERE campaign_id = ?`,
			campaignID).Scan(&next)
		if err != nil {
			return fmt.Errorf("next variant id: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO variants (campaign_id, id, name, creative_text, creative_url, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			campaignID, next, v.Name, v.CreativeText, v.CreativeURL, now)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
		out.ID = next
		return touchCampaign(ctx, tx, campaignID, now)
	})
	if err != nil {
		return nil, err
	}
	out.CampaignID = campaignID
	out.CreatedAt = now
	return &out, nil
}

// DeleteVariant removes one variant and refreshes the parent's updated_at.
func (r *CampaignRepository) DeleteVariant(ctx context.Context, campaignID, variantID int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if err := campaignExists(ctx, tx, campaignID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`DELETE FROM variants WHERE campaign_id = ? AND id = ?`, campaignID, variantID)
		if err != nil {
			return fmt.Errorf("delete variant: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return domain.ErrVariantNotFound
		}
		return touchCampaign(ctx, tx, campaignID, time.Now().UTC())
	})
}

func campaignExists(ctx context.Context, q querier, id int64) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM campaigns WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check campaign: %w", err)
	}
	return nil
}

func touchCampaign(ctx context.Context, q querier, id int64, now time.Time) error {
	if _, err := q.ExecContext(ctx, `UPDATE campaigns SET updated_at = ? WHERE id = ?`, now, id); err != nil {
		return fmt.Errorf("touch campaign: %w", err)
	}
	return nil
}

// Count returns the number of stored campaigns.
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}

// Stats recomputes the dashboard aggregate in one pass. TOTAL() counts
// missing values as zero, matching the treatment of non-numeric budget and
// cost fields.
func (r *CampaignRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		        TOTAL(budget),
		        TOTAL(cost)
		 FROM campaigns`, domain.StatusActive).
		Scan(&s.TotalCampaigns, &s.ActiveCampaigns, &s.TotalBudget, &s.TotalSpend)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}
	return &s, nil
}

// Seed bulk-inserts demo campaigns with their given ids. It rechecks
// emptiness inside the transaction so bootstrap data can never overwrite an
// already populated store.
func (r *CampaignRepository) Seed(ctx context.Context, campaigns []domain.Campaign) error {
	now := time.Now().UTC()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var n int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&n); err != nil {
			return fmt.Errorf("count campaigns: %w", err)
		}
		if n > 0 {
			return nil
		}
		for _, c := range campaigns {
			created, updated := c.CreatedAt, c.UpdatedAt
			if created.IsZero() {
				created = now
			}
			if updated.IsZero() {
				updated = now
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO campaigns
				 (id, name, objective, budget, status, start_date, end_date,
				  impressions, clicks, ctr, conversions, cost, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, c.Name, c.Objective, c.Budget, c.Status, c.StartDate, c.EndDate,
				c.Metrics.Impressions, c.Metrics.Clicks, c.Metrics.CTR,
				c.Metrics.Conversions, c.Metrics.Cost, created, updated)
			if err != nil {
				return fmt.Errorf("seed campaign %d: %w", c.ID, err)
			}
			for _, v := range c.Variants {
				vCreated := v.CreatedAt
				if vCreated.IsZero() {
					vCreated = now
				}
				_, err := tx.ExecContext(ctx,
					`INSERT INTO variants (campaign_id, id, name, creative_text, creative_url, created_at)
					 VALUES (?, ?, ?, ?, ?, ?)`,
					c.ID, v.ID, v.Name, v.CreativeText, v.CreativeURL, vCreated)
				if err != nil {
					return fmt.Errorf("seed variant %d/%d: %w", c.ID, v.ID, err)
				}
			}
		}
		return nil
	})
}
