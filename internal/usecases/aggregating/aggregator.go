// Package aggregating calcula as estatísticas de cada intenção sobre deals já filtrados
package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/pkg/utils"
)

const (
	// TopLimit é a quantidade máxima de itens nos rankings e motivos de perda
	TopLimit = 10

	// UnspecifiedReason substitui motivos de perda nulos
	UnspecifiedReason = "Motivo não especificado"
)

// Aggregate calcula o resultado da intenção. Entrada vazia gera contagens e taxas zeradas.
func Aggregate(deals []domain.Deal, intent domain.Intent) domain.Result {
	switch intent {
	case domain.IntentSales:
		return Sales(deals)
	case domain.IntentLossReasons:
		return LossReasons(deals)
	case domain.IntentRanking:
		return Ranking(deals)
	case domain.IntentConversion:
		return Conversion(deals)
	case domain.IntentFunnel:
		return Funnel(deals)
	default:
		return Summary(deals)
	}
}

// statusCounts conta os deals por status derivado
type statusCounts struct {
	total      int
	won        int
	lost       int
	inProgress int
	wonValue   float64
}

func countByStatus(deals []domain.Deal) statusCounts {
	counts := statusCounts{total: len(deals)}
	for _, deal := range deals {
		switch deal.Status() {
		case domain.DealStatusWon:
			counts.won++
			counts.wonValue += deal.AmountOrZero()
		case domain.DealStatusLost:
			counts.lost++
		case domain.DealStatusInProgress:
			counts.inProgress++
		}
	}
	return counts
}

func Sales(deals []domain.Deal) *domain.SalesResult {
	counts := countByStatus(deals)

	averageDealSize := 0.0
	if counts.won > 0 {
		averageDealSize = counts.wonValue / float64(counts.won)
	}

	return &domain.SalesResult{
		Type:               domain.IntentSales,
		TotalValue:         counts.wonValue,
		ClosedDeals:        counts.won,
		TotalOpportunities: counts.total,
		AverageDealSize:    averageDealSize,
		ConversionRate:     utils.RoundWithOneDecimalPlace(utils.Percentage(counts.won, counts.total)),
	}
}

// isValidReason descarta o placeholder e os valores vazios que chegam do CRM
func isValidReason(reason string) bool {
	return reason != UnspecifiedReason && reason != "" && reason != "null"
}

func LossReasons(deals []domain.Deal) *domain.LossReasonsResult {
	reasonCounts := make(map[string]int)
	order := make([]string, 0)
	totalLost := 0

	for _, deal := range deals {
		if deal.Status() != domain.DealStatusLost {
			continue
		}
		totalLost++

		reason := UnspecifiedReason
		if deal.LostReason != nil {
			reason = *deal.LostReason
		}

		if _, exists := reasonCounts[reason]; !exists {
			order = append(order, reason)
		}
		reasonCounts[reason]++
	}

	validReasons := make([]domain.LossReason, 0, len(order))
	for _, reason := range order {
		if isValidReason(reason) {
			validReasons = append(validReasons, domain.LossReason{Reason: reason, Count: reasonCounts[reason]})
		}
	}

	// Empates mantêm a ordem em que o motivo apareceu
	sort.SliceStable(validReasons, func(i, j int) bool {
		return validReasons[i].Count > validReasons[j].Count
	})

	totalWithReason := len(validReasons)
	if len(validReasons) > TopLimit {
		validReasons = validReasons[:TopLimit]
	}

	return &domain.LossReasonsResult{
		Type:            domain.IntentLossReasons,
		TotalLost:       totalLost,
		TopReasons:      validReasons,
		TotalWithReason: totalWithReason,
	}
}

// groupAccumulator acumula as estatísticas de um vendedor ou etapa
type groupAccumulator struct {
	totalDeals  int
	closedDeals int
	wonValue    float64
	totalValue  float64
}

func (g *groupAccumulator) add(deal domain.Deal) {
	g.totalDeals++
	g.totalValue += deal.AmountOrZero()
	if deal.Win {
		g.closedDeals++
		g.wonValue += deal.AmountOrZero()
	}
}

// groupBy agrupa os deals pela chave e retorna as chaves em ordem alfabética.
// Deals sem chave não entram em nenhum grupo.
func groupBy(deals []domain.Deal, key func(domain.Deal) string) (map[string]*groupAccumulator, []string) {
	groups := make(map[string]*groupAccumulator)
	keys := make([]string, 0)

	for _, deal := range deals {
		k := key(deal)
		if k == "" {
			continue
		}

		group, exists := groups[k]
		if !exists {
			group = &groupAccumulator{}
			groups[k] = group
			keys = append(keys, k)
		}
		group.add(deal)
	}

	sort.Strings(keys)
	return groups, keys
}

func Ranking(deals []domain.Deal) *domain.RankingResult {
	groups, agents := groupBy(deals, func(deal domain.Deal) string { return deal.UserName })

	users := make([]domain.AgentRanking, 0, len(agents))
	for _, agent := range agents {
		group := groups[agent]
		users = append(users, domain.AgentRanking{
			User:           agent,
			TotalValue:     utils.RoundWithTwoDecimalPlace(group.wonValue),
			ClosedDeals:    group.closedDeals,
			TotalDeals:     group.totalDeals,
			ConversionRate: utils.RoundWithOneDecimalPlace(utils.Percentage(group.closedDeals, group.totalDeals)),
		})
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalValue > users[j].TotalValue
	})

	if len(users) > TopLimit {
		users = users[:TopLimit]
	}

	return &domain.RankingResult{
		Type:  domain.IntentRanking,
		Users: users,
	}
}

func Conversion(deals []domain.Deal) *domain.ConversionResult {
	counts := countByStatus(deals)

	return &domain.ConversionResult{
		Type:            domain.IntentConversion,
		TotalDeals:      counts.total,
		ClosedDeals:     counts.won,
		LostDeals:       counts.lost,
		InProgressDeals: counts.inProgress,
		ConversionRate:  utils.RoundWithOneDecimalPlace(utils.Percentage(counts.won, counts.total)),
		LossRate:        utils.RoundWithOneDecimalPlace(utils.Percentage(counts.lost, counts.total)),
	}
}

func Funnel(deals []domain.Deal) *domain.FunnelResult {
	groups, stageNames := groupBy(deals, func(deal domain.Deal) string { return deal.StageName })

	stages := make([]domain.StageStats, 0, len(stageNames))
	for _, name := range stageNames {
		group := groups[name]
		stages = append(stages, domain.StageStats{
			Stage:          name,
			TotalDeals:     group.totalDeals,
			TotalValue:     group.totalValue,
			ClosedDeals:    group.closedDeals,
			ConversionRate: utils.RoundWithOneDecimalPlace(utils.Percentage(group.closedDeals, group.totalDeals)),
		})
	}

	return &domain.FunnelResult{
		Type:   domain.IntentFunnel,
		Stages: stages,
	}
}

func Summary(deals []domain.Deal) *domain.SummaryResult {
	counts := countByStatus(deals)

	return &domain.SummaryResult{
		Type:            domain.IntentSummary,
		TotalDeals:      counts.total,
		ClosedDeals:     counts.won,
		LostDeals:       counts.lost,
		InProgressDeals: counts.inProgress,
		TotalValue:      counts.wonValue,
		ConversionRate:  utils.RoundWithOneDecimalPlace(utils.Percentage(counts.won, counts.total)),
	}
}

// DateRange retorna a menor e a maior data de criação válidas, ou nil quando não há nenhuma
func DateRange(deals []domain.Deal) (first, last *time.Time) {
	for _, deal := range deals {
		createdAt, err := utils.ParseTimestamp(deal.CreatedAt)
		if err != nil {
			continue
		}

		if first == nil || createdAt.Before(*first) {
			value := createdAt
			first = &value
		}
		if last == nil || createdAt.After(*last) {
			value := createdAt
			last = &value
		}
	}
	return first, last
}
