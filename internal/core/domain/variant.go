package domain

import "time"

// Variant is a creative alternative nested under a campaign, used for
// comparative (A/B) testing. A variant has no independent existence: it is
// created and deleted only through its parent campaign, and its id is unique
// within that campaign only.
type Variant struct {
	ID           int64     `json:"id"`
	CampaignID   int64     `json:"-"`
	Name         string    `json:"name"`
	CreativeText string    `json:"creative_text,omitempty"`
	CreativeURL  string    `json:"creative_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
