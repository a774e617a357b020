package processing

import (
	"context"

	"github.com/vfg2006/nalk-ai-api/internal/domain"
)

// SmokeTestQuestion é a pergunta usada no teste com dados fixos
const SmokeTestQuestion = "Qual o valor vendido em junho de 2025?"

// SmokeTestRecords retorna a carga fixa de teste: dois deals ganhos e um perdido em junho de 2025
func SmokeTestRecords() []map[string]any {
	return []map[string]any{
		{
			"deal_created_at":       "2025-06-15T10:00:00Z",
			"deal_amount_total":     1500.00,
			"win":                   true,
			"hold":                  false,
			"user_name":             "João Silva",
			"deal_lost_reason_name": nil,
			"deal_stage_name":       "Fechado",
			"rd_deal_id":            "test_001",
		},
		{
			"deal_created_at":       "2025-06-20T14:30:00Z",
			"deal_amount_total":     2500.00,
			"win":                   true,
			"hold":                  false,
			"user_name":             "Maria Santos",
			"deal_lost_reason_name": nil,
			"deal_stage_name":       "Fechado",
			"rd_deal_id":            "test_002",
		},
		{
			"deal_created_at":       "2025-06-25T09:15:00Z",
			"deal_amount_total":     1200.00,
			"win":                   false,
			"hold":                  false,
			"user_name":             "Pedro Costa",
			"deal_lost_reason_name": "Preço muito alto",
			"deal_stage_name":       "Perdido",
			"rd_deal_id":            "test_003",
		},
	}
}

func (s *Service) SmokeTest(ctx context.Context) *domain.SmokeTestReport {
	records := SmokeTestRecords()

	return &domain.SmokeTestReport{
		TestQuestion:  SmokeTestQuestion,
		TestDataCount: len(records),
		Result:        s.Process(ctx, SmokeTestQuestion, records),
	}
}
