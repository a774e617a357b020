// Package analyzing classifica perguntas em linguagem natural sobre deals
package analyzing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/pkg/log"
)

// DefaultYear é o ano usado quando a pergunta cita um mês sem ano
const DefaultYear = 2025

var yearPattern = regexp.MustCompile(`202[0-9]`)

// QuestionAnalyzer define a interface de análise de perguntas
type QuestionAnalyzer interface {
	Analyze(question string) domain.QuestionAnalysis
}

// Analyzer guarda apenas configuração imutável e pode ser compartilhado entre requisições
type Analyzer struct {
	defaultYear int
}

// NewAnalyzer cria um analisador. defaultYear <= 0 usa DefaultYear.
func NewAnalyzer(defaultYear int) *Analyzer {
	if defaultYear <= 0 {
		defaultYear = DefaultYear
	}

	return &Analyzer{defaultYear: defaultYear}
}

// Analyze extrai intenção, período e filtro de status da pergunta. Nunca falha.
func (a *Analyzer) Analyze(question string) domain.QuestionAnalysis {
	lower := strings.ToLower(question)

	return domain.QuestionAnalysis{
		Type:              detectIntent(lower),
		Period:            a.detectPeriod(lower),
		StatusFilter:      detectStatusFilter(lower),
		AdditionalFilters: detectAdditionalFilters(lower),
		OriginalQuestion:  question,
	}
}

func detectIntent(question string) domain.Intent {
	for _, rule := range intentRules {
		if containsAny(question, rule.keywords) {
			return rule.intent
		}
	}

	return domain.IntentSummary
}

func (a *Analyzer) detectPeriod(question string) *domain.Period {
	month := 0
	for i, name := range monthNames {
		if strings.Contains(question, name) {
			month = i + 1
			break
		}
	}

	year := a.defaultYear
	if match := yearPattern.FindString(question); match != "" {
		year, _ = strconv.Atoi(match)
	}

	if month > 0 {
		return &domain.Period{Month: month, Year: year}
	}

	for _, word := range unsupportedPeriodWords {
		if strings.Contains(question, word) {
			log.L.WithField("granularity", word).Debug("analyzer: granularidade de período ainda não suportada")
		}
	}

	return nil
}

func detectStatusFilter(question string) domain.StatusFilter {
	for _, rule := range statusRules {
		if containsAny(question, rule.keywords) {
			return rule.status
		}
	}

	return domain.StatusFilterAll
}

// detectAdditionalFilters sempre retorna um mapa vazio; ver additionalFilterTriggers
func detectAdditionalFilters(question string) map[string]any {
	for _, trigger := range additionalFilterTriggers {
		if containsAny(question, trigger.keywords) {
			log.L.WithField("filter", trigger.filter).Debug("analyzer: filtro adicional detectado mas não extraído")
		}
	}

	return map[string]any{}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
