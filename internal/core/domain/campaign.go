package domain

import (
	"fmt"
	"strings"
	"time"
)

// Campaign status values accepted by the store.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known campaign statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Metrics holds aggregate delivery numbers for a campaign. All fields are
// non-negative. A freshly created campaign starts with every field at zero;
// values only change through campaign updates.
type Metrics struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Conversions float64 `json:"conversions"`
	Cost        float64 `json:"cost"`
}

// NonNegative reports whether every metric field is zero or positive.
func (m Metrics) NonNegative() bool {
	return m.Impressions >= 0 && m.Clicks >= 0 && m.CTR >= 0 &&
		m.Conversions >= 0 && m.Cost >= 0
}

// Campaign represents an advertising campaign.
// Budget and metric values are decimal units. StartDate and EndDate are ISO
// dates (2006-01-02); the ordering constraint between them is enforced at the
// HTTP edge, not by the store.
type Campaign struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Objective string    `json:"objective,omitempty"`
	Budget    float64   `json:"budget"`
	Status    string    `json:"status"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Metrics   Metrics   `json:"metrics"`
	Variants  []Variant `json:"variants"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the invariants the store refuses to persist without:
// a non-empty name, a known status and non-negative money and count fields.
func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidCampaign)
	}
	if c.Budget < 0 {
		return fmt.Errorf("%w: budget must be non-negative", ErrInvalidCampaign)
	}
	if !ValidStatus(c.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidCampaign, c.Status)
	}
	if !c.Metrics.NonNegative() {
		return fmt.Errorf("%w: metrics must be non-negative", ErrInvalidCampaign)
	}
	return nil
}

// CampaignPatch is a partial campaign update. Nil fields keep their stored
// values. The id of a campaign can never change through a patch.
type CampaignPatch struct {
	Name      *string
	Objective *string
	Budget    *float64
	Status    *string
	StartDate *string
	EndDate   *string
	Metrics   *Metrics
}

// Apply merges the patch over c, leaving unset fields untouched.
func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Metrics != nil {
		c.Metrics = *p.Metrics
	}
}
