package analyzing

import "github.com/vfg2006/nalk-ai-api/internal/domain"

// monthNames segue a ordem do calendário; a posição + 1 é o número do mês
var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

type intentRule struct {
	keywords []string
	intent   domain.Intent
}

// intentRules é avaliada de cima para baixo; a primeira regra que casa vence.
// Vendas vem antes de ranking, então "valor" + "vendedor" resulta em sales.
var intentRules = []intentRule{
	{keywords: []string{"valor", "vendido", "receita", "faturamento", "vendas"}, intent: domain.IntentSales},
	{keywords: []string{"motivo", "perda", "perdido", "perdeu"}, intent: domain.IntentLossReasons},
	{keywords: []string{"ranking", "melhor", "top", "performance", "vendedor"}, intent: domain.IntentRanking},
	{keywords: []string{"conversão", "taxa", "percentual"}, intent: domain.IntentConversion},
	{keywords: []string{"funil", "pipeline", "etapa", "stage"}, intent: domain.IntentFunnel},
}

type statusRule struct {
	keywords []string
	status   domain.StatusFilter
}

var statusRules = []statusRule{
	{keywords: []string{"fechado", "vendido", "ganho"}, status: domain.StatusFilterClosed},
	{keywords: []string{"perdido", "perda"}, status: domain.StatusFilterLost},
	{keywords: []string{"andamento", "progresso", "pipeline"}, status: domain.StatusFilterInProgress},
}

// Granularidades reconhecidas mas ainda sem filtro implementado
var unsupportedPeriodWords = []string{"trimestre", "semestre"}

// Gatilhos de filtros adicionais (vendedor específico, fonte do lead).
// A extração ainda não existe; os gatilhos só são registrados em log.
var additionalFilterTriggers = []struct {
	filter   string
	keywords []string
}{
	{filter: "user", keywords: []string{"vendedor"}},
	{filter: "source", keywords: []string{"fonte", "origem"}},
}

// MonthName retorna o nome do mês em português, ou "" para mês inválido
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return ""
	}
	return monthNames[month-1]
}
