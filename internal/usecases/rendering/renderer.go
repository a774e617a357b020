// Package rendering transforma os resultados agregados em respostas em linguagem natural
package rendering

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/analyzing"
)

// Render gera a resposta em texto para o resultado da análise
func Render(analysis domain.QuestionAnalysis, result domain.Result) string {
	period := PeriodText(analysis.Period)

	switch r := result.(type) {
	case *domain.SalesResult:
		return renderSales(r, period)
	case *domain.LossReasonsResult:
		return renderLossReasons(r, period)
	case *domain.RankingResult:
		return renderRanking(r, period)
	case *domain.ConversionResult:
		return renderConversion(r, period)
	case *domain.FunnelResult:
		return renderFunnel(r, period)
	case *domain.SummaryResult:
		return renderSummary(r, period)
	default:
		return domain.FallbackAnswer
	}
}

// PeriodText retorna o sufixo " em <mês> de <ano>", ou "" sem período
func PeriodText(period *domain.Period) string {
	if period == nil {
		return ""
	}

	return fmt.Sprintf(" em %s de %d", analyzing.MonthName(period.Month), period.Year)
}

func renderSales(r *domain.SalesResult, period string) string {
	if r.ClosedDeals == 0 {
		if r.TotalOpportunities > 0 {
			return fmt.Sprintf(`📊 **Vendas%s:**

💰 **Valor total vendido:** R$ 0,00
📈 **Total de oportunidades:** %s
⚠️ **Nenhum deal fechado neste período**

💡 **Dica:** Existem %d oportunidades em aberto que podem ser trabalhadas.`,
				period, FormatInt(r.TotalOpportunities), r.TotalOpportunities)
		}

		return fmt.Sprintf("Não foram encontradas vendas ou oportunidades%s.", period)
	}

	return fmt.Sprintf(`📊 **Vendas%s:**

💰 **Valor total vendido:** %s
✅ **Deals fechados:** %s
📈 **Total de oportunidades:** %s
💵 **Ticket médio:** %s
📊 **Taxa de conversão:** %s%%`,
		period,
		FormatCurrency(r.TotalValue),
		FormatInt(r.ClosedDeals),
		FormatInt(r.TotalOpportunities),
		FormatCurrency(r.AverageDealSize),
		FormatPercent(r.ConversionRate),
	)
}

func renderLossReasons(r *domain.LossReasonsResult, period string) string {
	if r.TotalLost == 0 {
		return fmt.Sprintf("Não foram encontrados deals perdidos%s.", period)
	}

	lines := make([]string, 0, len(r.TopReasons))
	for i, reason := range r.TopReasons {
		lines = append(lines, fmt.Sprintf("%d. **%s** (%d deals)", i+1, reason.Reason, reason.Count))
	}

	return fmt.Sprintf(`📉 **Motivos de perda%s:**

❌ **Total perdidos:** %s deals

**Top motivos:**
%s`, period, FormatInt(r.TotalLost), strings.Join(lines, "\n"))
}

func renderRanking(r *domain.RankingResult, period string) string {
	if len(r.Users) == 0 {
		return fmt.Sprintf("Não foram encontrados vendedores com deals%s.", period)
	}

	lines := make([]string, 0, len(r.Users))
	for i, user := range r.Users {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %s (%d/%d deals - %s%%)",
			i+1, user.User, FormatCurrency(user.TotalValue),
			user.ClosedDeals, user.TotalDeals, FormatPercent(user.ConversionRate)))
	}

	return fmt.Sprintf("🏆 **Ranking de vendedores%s:**\n\n%s", period, strings.Join(lines, "\n"))
}

func renderConversion(r *domain.ConversionResult, period string) string {
	return fmt.Sprintf(`📈 **Análise de Conversão%s:**

📊 **Total de deals:** %s
✅ **Taxa de conversão:** %s%%
❌ **Taxa de perda:** %s%%
⏳ **Em andamento:** %s deals`,
		period,
		FormatInt(r.TotalDeals),
		FormatPercent(r.ConversionRate),
		FormatPercent(r.LossRate),
		FormatInt(r.InProgressDeals),
	)
}

func renderFunnel(r *domain.FunnelResult, period string) string {
	if len(r.Stages) == 0 {
		return fmt.Sprintf("Não foram encontradas etapas com deals%s.", period)
	}

	lines := make([]string, 0, len(r.Stages))
	for _, stage := range r.Stages {
		lines = append(lines, fmt.Sprintf("**%s:** %d deals (%s) - %s%%",
			stage.Stage, stage.TotalDeals, FormatCurrency(stage.TotalValue), FormatPercent(stage.ConversionRate)))
	}

	return fmt.Sprintf("🔄 **Funil de Vendas%s:**\n\n%s", period, strings.Join(lines, "\n"))
}

func renderSummary(r *domain.SummaryResult, period string) string {
	return fmt.Sprintf(`📋 **Resumo%s:**

📊 **Total de deals:** %s
✅ **Fechados:** %s
❌ **Perdidos:** %s
⏳ **Em andamento:** %s
💰 **Valor total:** %s
📈 **Taxa de conversão:** %s%%`,
		period,
		FormatInt(r.TotalDeals),
		FormatInt(r.ClosedDeals),
		FormatInt(r.LostDeals),
		FormatInt(r.InProgressDeals),
		FormatCurrency(r.TotalValue),
		FormatPercent(r.ConversionRate),
	)
}

// RenderWelcome gera a mensagem de boas-vindas com o intervalo de datas disponível
func RenderWelcome(first, last *time.Time) string {
	dateInfo := ""
	if first != nil && last != nil {
		dateInfo = fmt.Sprintf("\n\n📅 **Dados disponíveis:** %s até %s", monthYear(*first), monthYear(*last))
	}

	return fmt.Sprintf("👋 **Olá! Eu sou a Nalk AI!**\n\nPosso ajudar você com análises dos seus dados de CRM.%s\n\nComo posso ajudar você hoje? 🚀", dateInfo)
}

func monthYear(t time.Time) string {
	return fmt.Sprintf("%s de %d", analyzing.MonthName(int(t.Month())), t.Year())
}
