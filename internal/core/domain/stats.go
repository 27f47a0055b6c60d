package domain

// Stats is the dashboard aggregate across all stored campaigns. TotalBudget
// sums every campaign budget and TotalSpend sums every metrics cost; missing
// values count as zero.
type Stats struct {
	TotalCampaigns  int64   `json:"totalCampaigns"`
	ActiveCampaigns int64   `json:"activeCampaigns"`
	TotalBudget     float64 `json:"totalBudget"`
	TotalSpend      float64 `json:"totalSpend"`
}
