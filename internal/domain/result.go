package domain

// Result é o resultado de uma agregação. Cada intenção tem seu próprio formato.
type Result interface {
	ResultType() Intent
}

type SalesResult struct {
	Type               Intent  `json:"type"`
	TotalValue         float64 `json:"total_value"`
	ClosedDeals        int     `json:"closed_deals"`
	TotalOpportunities int     `json:"total_opportunities"`
	AverageDealSize    float64 `json:"average_deal_size"`
	ConversionRate     float64 `json:"conversion_rate"`
}

type LossReason struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type LossReasonsResult struct {
	Type            Intent       `json:"type"`
	TotalLost       int          `json:"total_lost"`
	TopReasons      []LossReason `json:"top_reasons"`
	TotalWithReason int          `json:"total_with_reason"`
}

// AgentRanking são as estatísticas de um vendedor
type AgentRanking struct {
	User           string  `json:"user"`
	TotalValue     float64 `json:"total_value"`
	ClosedDeals    int     `json:"closed_deals"`
	TotalDeals     int     `json:"total_deals"`
	ConversionRate float64 `json:"conversion_rate"`
}

type RankingResult struct {
	Type  Intent         `json:"type"`
	Users []AgentRanking `json:"users"`
}

type ConversionResult struct {
	Type            Intent  `json:"type"`
	TotalDeals      int     `json:"total_deals"`
	ClosedDeals     int     `json:"closed_deals"`
	LostDeals       int     `json:"lost_deals"`
	InProgressDeals int     `json:"in_progress_deals"`
	ConversionRate  float64 `json:"conversion_rate"`
	LossRate        float64 `json:"loss_rate"`
}

// StageStats são as estatísticas de uma etapa do funil
type StageStats struct {
	Stage          string  `json:"stage"`
	TotalDeals     int     `json:"total_deals"`
	TotalValue     float64 `json:"total_value"`
	ClosedDeals    int     `json:"closed_deals"`
	ConversionRate float64 `json:"conversion_rate"`
}

type FunnelResult struct {
	Type   Intent       `json:"type"`
	Stages []StageStats `json:"stages"`
}

type SummaryResult struct {
	Type            Intent  `json:"type"`
	TotalDeals      int     `json:"total_deals"`
	ClosedDeals     int     `json:"closed_deals"`
	LostDeals       int     `json:"lost_deals"`
	InProgressDeals int     `json:"in_progress_deals"`
	TotalValue      float64 `json:"total_value"`
	ConversionRate  float64 `json:"conversion_rate"`
}

func (r *SalesResult) ResultType() Intent       { return IntentSales }
func (r *LossReasonsResult) ResultType() Intent { return IntentLossReasons }
func (r *RankingResult) ResultType() Intent     { return IntentRanking }
func (r *ConversionResult) ResultType() Intent  { return IntentConversion }
func (r *FunnelResult) ResultType() Intent      { return IntentFunnel }
func (r *SummaryResult) ResultType() Intent     { return IntentSummary }
