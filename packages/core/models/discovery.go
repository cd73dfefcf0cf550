package models

// DiscoveryRecruit is a recruit annotated with both trend classifications.
type DiscoveryRecruit struct {
	Recruit
	UTRTrend          string  `json:"utr_trend"`
	UTRTrendValue     float64 `json:"utr_trend_value"`
	RankingTrend      string  `json:"ranking_trend"`
	RankingTrendValue float64 `json:"ranking_trend_value"`
}

type DiscoveryData struct {
	All            []DiscoveryRecruit `json:"all"`
	Undervalued    []DiscoveryRecruit `json:"undervalued"`
	RisingStars    []DiscoveryRecruit `json:"risingStars"`
	RisingRankings []DiscoveryRecruit `json:"risingRankings"`
	Undercontacted []DiscoveryRecruit `json:"undercontacted"`
}

type DiscoveryResponse struct {
	Success bool          `json:"success"`
	Data    DiscoveryData `json:"data"`
}
