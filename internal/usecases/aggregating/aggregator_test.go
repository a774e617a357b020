package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func juneDeals() []domain.Deal {
	return []domain.Deal{
		{ID: "test_001", CreatedAt: "2025-06-15T10:00:00Z", Amount: floatPtr(1500), Win: true, UserName: "João Silva", StageName: "Fechado"},
		{ID: "test_002", CreatedAt: "2025-06-20T14:30:00Z", Amount: floatPtr(2500), Win: true, UserName: "Maria Santos", StageName: "Fechado"},
		{ID: "test_003", CreatedAt: "2025-06-25T09:15:00Z", Amount: floatPtr(1200), UserName: "Pedro Costa", LostReason: stringPtr("Preço muito alto"), StageName: "Perdido"},
	}
}

func TestSales(t *testing.T) {
	result := Sales(juneDeals())

	assert.Equal(t, domain.IntentSales, result.Type)
	assert.Equal(t, 4000.0, result.TotalValue)
	assert.Equal(t, 2, result.ClosedDeals)
	assert.Equal(t, 3, result.TotalOpportunities)
	assert.Equal(t, 2000.0, result.AverageDealSize)
	assert.Equal(t, 66.7, result.ConversionRate)
}

func TestSales_NullAmountCountsAsZero(t *testing.T) {
	result := Sales([]domain.Deal{
		{Win: true, Amount: floatPtr(300)},
		{Win: true},
	})

	assert.Equal(t, 300.0, result.TotalValue)
	assert.Equal(t, 150.0, result.AverageDealSize)
}

func TestAggregate_EmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		intent   domain.Intent
		validate func(t *testing.T, result domain.Result)
	}{
		{
			name:   "Vendas",
			intent: domain.IntentSales,
			validate: func(t *testing.T, result domain.Result) {
				assert.Equal(t, &domain.SalesResult{Type: domain.IntentSales}, result)
			},
		},
		{
			name:   "Motivos de perda",
			intent: domain.IntentLossReasons,
			validate: func(t *testing.T, result domain.Result) {
				loss := result.(*domain.LossReasonsResult)
				assert.Zero(t, loss.TotalLost)
				assert.Zero(t, loss.TotalWithReason)
				assert.Empty(t, loss.TopReasons)
			},
		},
		{
			name:   "Ranking",
			intent: domain.IntentRanking,
			validate: func(t *testing.T, result domain.Result) {
				assert.Empty(t, result.(*domain.RankingResult).Users)
			},
		},
		{
			name:   "Conversão",
			intent: domain.IntentConversion,
			validate: func(t *testing.T, result domain.Result) {
				assert.Equal(t, &domain.ConversionResult{Type: domain.IntentConversion}, result)
			},
		},
		{
			name:   "Funil",
			intent: domain.IntentFunnel,
			validate: func(t *testing.T, result domain.Result) {
				assert.Empty(t, result.(*domain.FunnelResult).Stages)
			},
		},
		{
			name:   "Resumo",
			intent: domain.IntentSummary,
			validate: func(t *testing.T, result domain.Result) {
				assert.Equal(t, &domain.SummaryResult{Type: domain.IntentSummary}, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate([]domain.Deal{}, tt.intent)
			require.NotNil(t, result)
			assert.Equal(t, tt.intent, result.ResultType())
			tt.validate(t, result)
		})
	}
}

func TestLossReasons(t *testing.T) {
	deals := []domain.Deal{
		{LostReason: stringPtr("Preço")},
		{LostReason: stringPtr("Concorrência")},
		{LostReason: stringPtr("Preço")},
		{LostReason: nil},
		{LostReason: stringPtr("")},
		{LostReason: stringPtr("null")},
		{LostReason: stringPtr("Timing")},
		{LostReason: stringPtr("Concorrência")},
		{Win: true, LostReason: stringPtr("Ignorado")},
		{Hold: true, LostReason: stringPtr("Ignorado")},
	}

	result := LossReasons(deals)

	assert.Equal(t, 8, result.TotalLost)
	assert.Equal(t, 3, result.TotalWithReason)
	assert.Equal(t, []domain.LossReason{
		{Reason: "Preço", Count: 2},
		{Reason: "Concorrência", Count: 2},
		{Reason: "Timing", Count: 1},
	}, result.TopReasons)
}

func TestLossReasons_NullReasonCountedButExcluded(t *testing.T) {
	result := LossReasons([]domain.Deal{{Win: false, Hold: false, LostReason: nil}})

	assert.Equal(t, 1, result.TotalLost)
	assert.Zero(t, result.TotalWithReason)
	assert.Empty(t, result.TopReasons)
}

func TestLossReasons_TopTen(t *testing.T) {
	deals := make([]domain.Deal, 0)
	for i := 0; i < 12; i++ {
		reason := string(rune('A' + i))
		for j := 0; j <= i; j++ {
			deals = append(deals, domain.Deal{LostReason: stringPtr(reason)})
		}
	}

	result := LossReasons(deals)

	require.Len(t, result.TopReasons, TopLimit)
	assert.Equal(t, "L", result.TopReasons[0].Reason)
	assert.Equal(t, 12, result.TopReasons[0].Count)
	assert.Equal(t, "C", result.TopReasons[9].Reason)
	assert.Equal(t, 12, result.TotalWithReason)
}

func TestRanking(t *testing.T) {
	deals := []domain.Deal{
		{UserName: "B", Amount: floatPtr(500)},
		{UserName: "A", Amount: floatPtr(100), Win: true},
		{UserName: "B", Amount: floatPtr(700), Hold: true},
	}

	result := Ranking(deals)

	assert.Equal(t, []domain.AgentRanking{
		{User: "A", TotalValue: 100, ClosedDeals: 1, TotalDeals: 1, ConversionRate: 100.0},
		{User: "B", TotalValue: 0, ClosedDeals: 0, TotalDeals: 2, ConversionRate: 0.0},
	}, result.Users)
}

func TestRanking_SortsByValueAndLimits(t *testing.T) {
	deals := make([]domain.Deal, 0)
	for i := 0; i < 12; i++ {
		deals = append(deals, domain.Deal{
			UserName: string(rune('a' + i)),
			Amount:   floatPtr(float64(i * 100)),
			Win:      true,
		})
	}
	deals = append(deals,
		domain.Deal{UserName: "l", Amount: floatPtr(0.333), Win: true},
		domain.Deal{UserName: "", Amount: floatPtr(99999), Win: true},
		domain.Deal{UserName: "l", Win: false},
	)

	result := Ranking(deals)

	require.Len(t, result.Users, TopLimit)
	assert.Equal(t, "l", result.Users[0].User)
	assert.Equal(t, 1100.33, result.Users[0].TotalValue)
	assert.Equal(t, 3, result.Users[0].TotalDeals)
	assert.Equal(t, 66.7, result.Users[0].ConversionRate)
	assert.Equal(t, "c", result.Users[9].User)
	for _, user := range result.Users {
		assert.NotEmpty(t, user.User)
	}
}

func TestConversion(t *testing.T) {
	deals := []domain.Deal{
		{Win: true},
		{Win: false, Hold: false},
		{Win: false, Hold: true},
		{Win: false, Hold: true},
		{Win: true},
		{Win: false},
	}

	result := Conversion(deals)

	assert.Equal(t, &domain.ConversionResult{
		Type:            domain.IntentConversion,
		TotalDeals:      6,
		ClosedDeals:     2,
		LostDeals:       2,
		InProgressDeals: 2,
		ConversionRate:  33.3,
		LossRate:        33.3,
	}, result)
}

func TestFunnel(t *testing.T) {
	deals := []domain.Deal{
		{StageName: "Proposta", Amount: floatPtr(1000), Hold: true},
		{StageName: "Fechado", Amount: floatPtr(2000), Win: true},
		{StageName: "Proposta", Amount: floatPtr(500), Win: true},
		{StageName: "Proposta"},
		{StageName: ""},
	}

	result := Funnel(deals)

	assert.Equal(t, []domain.StageStats{
		{Stage: "Fechado", TotalDeals: 1, TotalValue: 2000, ClosedDeals: 1, ConversionRate: 100},
		{Stage: "Proposta", TotalDeals: 3, TotalValue: 1500, ClosedDeals: 1, ConversionRate: 33.3},
	}, result.Stages)
}

func TestSummary(t *testing.T) {
	result := Summary(juneDeals())

	assert.Equal(t, &domain.SummaryResult{
		Type:            domain.IntentSummary,
		TotalDeals:      3,
		ClosedDeals:     2,
		LostDeals:       1,
		InProgressDeals: 0,
		TotalValue:      4000,
		ConversionRate:  66.7,
	}, result)
}

func TestRatesAreBounded(t *testing.T) {
	collections := [][]domain.Deal{
		{},
		{{Win: true}},
		{{Win: false}},
		{{Hold: true}, {Win: true}, {Win: false}},
	}

	for _, deals := range collections {
		sales := Sales(deals)
		conversion := Conversion(deals)
		summary := Summary(deals)

		for _, rate := range []float64{sales.ConversionRate, conversion.ConversionRate, conversion.LossRate, summary.ConversionRate} {
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, 100.0)
		}
	}
}

func TestStatusIsPartition(t *testing.T) {
	deals := []domain.Deal{
		{Win: true, Hold: false},
		{Win: false, Hold: false},
		{Win: false, Hold: true},
	}

	counts := countByStatus(deals)

	assert.Equal(t, counts.total, counts.won+counts.lost+counts.inProgress)
}

func TestAggregate_Idempotent(t *testing.T) {
	deals := juneDeals()

	for _, intent := range []domain.Intent{
		domain.IntentSales, domain.IntentLossReasons, domain.IntentRanking,
		domain.IntentConversion, domain.IntentFunnel, domain.IntentSummary,
	} {
		assert.Equal(t, Aggregate(deals, intent), Aggregate(deals, intent))
	}
}

func TestDateRange(t *testing.T) {
	deals := append(juneDeals(), domain.Deal{CreatedAt: "inválida"}, domain.Deal{CreatedAt: "2025-05-01"})

	first, last := DateRange(deals)

	require.NotNil(t, first)
	require.NotNil(t, last)
	assert.True(t, first.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, last.Equal(time.Date(2025, 6, 25, 9, 15, 0, 0, time.UTC)))
}

func TestDateRange_NoValidDates(t *testing.T) {
	first, last := DateRange([]domain.Deal{{CreatedAt: ""}})

	assert.Nil(t, first)
	assert.Nil(t, last)
}
