package analytics

// TrackRequest records a single public portfolio page view
type TrackRequest struct {
	Username string `json:"username" binding:"required,max=30"`
	Path     string `json:"path" binding:"required,max=255"`
	Referrer string `json:"referrer" binding:"omitempty,max=255"`
}

// Bucket is one aggregation interval of page views
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsResponse is the aggregated view counts for a portfolio
type StatsResponse struct {
	Username string   `json:"username"`
	Period   string   `json:"period"`
	Total    int      `json:"total"`
	Buckets  []Bucket `json:"buckets"`
}
