// Package filtering aplica os filtros de período e status sobre os deals
package filtering

import (
	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/pkg/utils"
)

// Apply aplica o filtro de período e depois o de status.
// Nunca altera a entrada e preserva a ordem original.
func Apply(deals []domain.Deal, period *domain.Period, status domain.StatusFilter) []domain.Deal {
	return ByStatus(ByPeriod(deals, period), status)
}

// ByPeriod mantém os deals criados no mês/ano do período.
// Datas ausentes ou inválidas nunca casam com o período.
func ByPeriod(deals []domain.Deal, period *domain.Period) []domain.Deal {
	if period == nil {
		return clone(deals)
	}

	return keep(deals, func(deal domain.Deal) bool {
		createdAt, err := utils.ParseTimestamp(deal.CreatedAt)
		if err != nil {
			return false
		}
		return int(createdAt.Month()) == period.Month && createdAt.Year() == period.Year
	})
}

// ByStatus mantém os deals compatíveis com o filtro de status
func ByStatus(deals []domain.Deal, status domain.StatusFilter) []domain.Deal {
	switch status {
	case domain.StatusFilterClosed:
		return keep(deals, func(deal domain.Deal) bool { return deal.Win })
	case domain.StatusFilterLost:
		return keep(deals, func(deal domain.Deal) bool { return !deal.Win && !deal.Hold })
	case domain.StatusFilterInProgress:
		return keep(deals, func(deal domain.Deal) bool { return !deal.Win && deal.Hold })
	default:
		return clone(deals)
	}
}

func keep(deals []domain.Deal, predicate func(domain.Deal) bool) []domain.Deal {
	filtered := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if predicate(deal) {
			filtered = append(filtered, deal)
		}
	}
	return filtered
}

func clone(deals []domain.Deal) []domain.Deal {
	return append(make([]domain.Deal, 0, len(deals)), deals...)
}
