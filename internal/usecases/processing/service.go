// Package processing orquestra o pipeline de perguntas: análise, filtros, agregação e resposta
package processing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/nalk-ai-api/internal/config"
	"github.com/vfg2006/nalk-ai-api/internal/domain"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/aggregating"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/analyzing"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/filtering"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/rendering"
	"github.com/vfg2006/nalk-ai-api/pkg/log"
)

// WelcomeQuestion é a pergunta enviada pelo front-end ao abrir o chat
const WelcomeQuestion = "__GET_DATE_RANGE__"

//go:generate mockgen -source=service.go -destination=mocks/mock_processor.go -package=mocks

// Processor define a interface do pipeline de perguntas
type Processor interface {
	// Process responde a pergunta sobre os registros. Sempre retorna um envelope válido.
	Process(ctx context.Context, question string, records []map[string]any) *domain.Envelope

	// Analyze apenas classifica a pergunta, sem processar dados
	Analyze(question string) domain.QuestionAnalysis

	// SmokeTest executa o pipeline com a carga fixa de teste
	SmokeTest(ctx context.Context) *domain.SmokeTestReport
}

// Service implementa Processor. Não guarda estado entre chamadas.
type Service struct {
	analyzer   analyzing.QuestionAnalyzer
	timeout    time.Duration
	maxRecords int
}

// NewService cria uma nova instância do serviço de processamento
func NewService(cfg *config.Config) Processor {
	return &Service{
		analyzer:   analyzing.NewAnalyzer(cfg.Processing.DefaultYear),
		timeout:    cfg.Processing.Timeout,
		maxRecords: cfg.Processing.MaxRecords,
	}
}

func (s *Service) Analyze(question string) domain.QuestionAnalysis {
	return s.analyzer.Analyze(question)
}

// Process executa o pipeline limitado pelo timeout configurado
func (s *Service) Process(ctx context.Context, question string, records []map[string]any) *domain.Envelope {
	logger := log.ForContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan *domain.Envelope, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- s.fail(logger, NewProcessingError(ErrUnexpectedFailure, CodeUnexpected, fmt.Sprint(r)))
			}
		}()

		done <- s.run(logger, question, records)
	}()

	select {
	case envelope := <-done:
		return envelope
	case <-ctx.Done():
		return s.fail(logger, NewProcessingError(ErrProcessTimeout, CodeTimeout, ctx.Err().Error()))
	}
}

func (s *Service) run(logger log.Logger, question string, records []map[string]any) *domain.Envelope {
	if s.maxRecords > 0 && len(records) > s.maxRecords {
		return s.fail(logger, NewProcessingError(ErrTooManyRecords, CodeTooManyRecords,
			fmt.Sprintf("%d registros recebidos, limite de %d", len(records), s.maxRecords)))
	}

	set, err := domain.DecodeDeals(records)
	if err != nil {
		return s.fail(logger, NewProcessingError(ErrInvalidRecords, CodeInvalidRecords,
			errors.Wrapf(err, "decodificando %d registros", len(records)).Error()))
	}

	if question == WelcomeQuestion {
		first, last := aggregating.DateRange(set.Deals)
		return &domain.Envelope{
			Success: true,
			Answer:  rendering.RenderWelcome(first, last),
		}
	}

	analysis := s.analyzer.Analyze(question)
	logger.WithFields(log.Fields{
		"intent":        analysis.Type,
		"period":        analysis.Period,
		"status_filter": analysis.StatusFilter,
	}).Info("processing: análise da pergunta concluída")

	if missing := missingColumns(set, analysis); len(missing) > 0 {
		return s.fail(logger, NewProcessingError(ErrMissingColumn, CodeMissingColumn, strings.Join(missing, ", ")))
	}

	logger.WithField("records", set.Len()).Info("processing: processando registros")

	filtered := filtering.Apply(set.Deals, analysis.Period, analysis.StatusFilter)
	logger.WithField("records", len(filtered)).Info("processing: registros após filtros")

	result := aggregating.Aggregate(filtered, analysis.Type)

	return &domain.Envelope{
		Success:  true,
		Answer:   rendering.Render(analysis, result),
		Analysis: &analysis,
		Result:   result,
	}
}

func (s *Service) fail(logger log.Logger, err *ProcessingError) *domain.Envelope {
	logger.WithError(err).WithField("code", err.Code).Error("processing: erro no processamento")
	return domain.NewFailureEnvelope(err)
}

// missingColumns lista as colunas que a análise precisa e que não aparecem em
// nenhum registro. Coleções vazias nunca têm colunas faltando.
func missingColumns(set *domain.DealSet, analysis domain.QuestionAnalysis) []string {
	if set.Len() == 0 {
		return nil
	}

	required := []string{domain.ColumnWin}

	if analysis.Period != nil {
		required = append(required, domain.ColumnCreatedAt)
	}

	switch analysis.StatusFilter {
	case domain.StatusFilterLost, domain.StatusFilterInProgress:
		required = append(required, domain.ColumnHold)
	}

	switch analysis.Type {
	case domain.IntentLossReasons:
		required = append(required, domain.ColumnHold, domain.ColumnLostReason)
	case domain.IntentConversion, domain.IntentSummary:
		required = append(required, domain.ColumnHold)
	case domain.IntentRanking:
		required = append(required, domain.ColumnUserName)
	case domain.IntentFunnel:
		required = append(required, domain.ColumnStageName)
	}

	missing := make([]string, 0)
	seen := make(map[string]bool)
	for _, column := range required {
		if seen[column] {
			continue
		}
		seen[column] = true

		if !set.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	return missing
}
