package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
)

func sampleDeals() []domain.Deal {
	return []domain.Deal{
		{ID: "d1", CreatedAt: "2025-06-15T10:00:00Z", Win: true},
		{ID: "d2", CreatedAt: "2025-06-20", Win: false, Hold: false},
		{ID: "d3", CreatedAt: "2025-06-25 09:15:00+00", Win: false, Hold: true},
		{ID: "d4", CreatedAt: "2025-07-01T08:00:00.123456-03:00", Win: true},
		{ID: "d5", CreatedAt: "2024-06-10", Win: true},
		{ID: "d6", CreatedAt: "não é data", Win: true},
		{ID: "d7", CreatedAt: "", Win: false, Hold: true},
	}
}

func ids(deals []domain.Deal) []string {
	result := make([]string, 0, len(deals))
	for _, deal := range deals {
		result = append(result, deal.ID)
	}
	return result
}

func TestByPeriod(t *testing.T) {
	tests := []struct {
		name     string
		period   *domain.Period
		expected []string
	}{
		{name: "Sem período mantém tudo", period: nil, expected: []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}},
		{name: "Junho de 2025", period: &domain.Period{Month: 6, Year: 2025}, expected: []string{"d1", "d2", "d3"}},
		{name: "Julho de 2025 com fuso horário", period: &domain.Period{Month: 7, Year: 2025}, expected: []string{"d4"}},
		{name: "Mesmo mês em outro ano", period: &domain.Period{Month: 6, Year: 2024}, expected: []string{"d5"}},
		{name: "Período sem registros", period: &domain.Period{Month: 1, Year: 2020}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(ByPeriod(sampleDeals(), tt.period)))
		})
	}
}

func TestByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.StatusFilter
		expected []string
	}{
		{name: "Fechados", status: domain.StatusFilterClosed, expected: []string{"d1", "d4", "d5", "d6"}},
		{name: "Perdidos", status: domain.StatusFilterLost, expected: []string{"d2"}},
		{name: "Em andamento", status: domain.StatusFilterInProgress, expected: []string{"d3", "d7"}},
		{name: "Todos", status: domain.StatusFilterAll, expected: []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(ByStatus(sampleDeals(), tt.status)))
		})
	}
}

func TestApply_PeriodThenStatus(t *testing.T) {
	filtered := Apply(sampleDeals(), &domain.Period{Month: 6, Year: 2025}, domain.StatusFilterClosed)

	assert.Equal(t, []string{"d1"}, ids(filtered))
}

func TestApply_AllWithoutPeriodIsIdentity(t *testing.T) {
	deals := sampleDeals()

	filtered := Apply(deals, nil, domain.StatusFilterAll)

	assert.Equal(t, deals, filtered)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	deals := sampleDeals()
	original := sampleDeals()

	filtered := Apply(deals, &domain.Period{Month: 6, Year: 2025}, domain.StatusFilterLost)
	filtered[0].ID = "alterado"

	assert.Equal(t, original, deals)
}

func TestApply_EmptyInput(t *testing.T) {
	filtered := Apply(nil, &domain.Period{Month: 6, Year: 2025}, domain.StatusFilterClosed)

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
