// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Colunas conhecidas dos registros de deals (tabela deals_normalized)
const (
	ColumnCreatedAt  = "deal_created_at"
	ColumnAmount     = "deal_amount_total"
	ColumnWin        = "win"
	ColumnHold       = "hold"
	ColumnUserName   = "user_name"
	ColumnLostReason = "deal_lost_reason_name"
	ColumnStageName  = "deal_stage_name"
	ColumnDealID     = "rd_deal_id"
)

// DealStatus é o status derivado de um deal a partir de win/hold
type DealStatus string

const (
	DealStatusWon        DealStatus = "won"
	DealStatusLost       DealStatus = "lost"
	DealStatusInProgress DealStatus = "in_progress"
)

// Deal representa uma oportunidade do CRM
type Deal struct {
	CreatedAt  string   `mapstructure:"deal_created_at" json:"deal_created_at,omitempty"`
	Amount     *float64 `mapstructure:"deal_amount_total" json:"deal_amount_total"`
	Win        bool     `mapstructure:"win" json:"win"`
	Hold       bool     `mapstructure:"hold" json:"hold"`
	UserName   string   `mapstructure:"user_name" json:"user_name,omitempty"`
	LostReason *string  `mapstructure:"deal_lost_reason_name" json:"deal_lost_reason_name"`
	StageName  string   `mapstructure:"deal_stage_name" json:"deal_stage_name,omitempty"`
	ID         string   `mapstructure:"rd_deal_id" json:"rd_deal_id,omitempty"`
}

// Status deriva o status do deal. Todo deal está em exatamente um status;
// win tem precedência sobre hold.
func (d Deal) Status() DealStatus {
	switch {
	case d.Win:
		return DealStatusWon
	case d.Hold:
		return DealStatusInProgress
	default:
		return DealStatusLost
	}
}

// AmountOrZero retorna o valor do deal, ou 0 quando ausente
func (d Deal) AmountOrZero() float64 {
	if d.Amount == nil {
		return 0
	}
	return *d.Amount
}

// DealSet é a coleção decodificada junto com as colunas presentes na entrada
type DealSet struct {
	Deals   []Deal
	columns map[string]bool
}

// NewDealSet monta um DealSet a partir de deals já tipados, considerando
// presentes todas as colunas conhecidas
func NewDealSet(deals []Deal) *DealSet {
	columns := make(map[string]bool)
	if len(deals) > 0 {
		for _, column := range []string{
			ColumnCreatedAt, ColumnAmount, ColumnWin, ColumnHold,
			ColumnUserName, ColumnLostReason, ColumnStageName, ColumnDealID,
		} {
			columns[column] = true
		}
	}

	return &DealSet{Deals: deals, columns: columns}
}

// HasColumn informa se a coluna apareceu em pelo menos um registro
func (s *DealSet) HasColumn(column string) bool {
	return s.columns[column]
}

// Len retorna a quantidade de deals
func (s *DealSet) Len() int {
	return len(s.Deals)
}

// DecodeDeals converte registros soltos (JSON decodificado) em deals.
// Campos desconhecidos são ignorados e campos opcionais ausentes ficam nulos.
func DecodeDeals(raw []map[string]any) (*DealSet, error) {
	set := &DealSet{
		Deals:   make([]Deal, 0, len(raw)),
		columns: make(map[string]bool),
	}

	for i, record := range raw {
		for column := range record {
			set.columns[column] = true
		}

		var deal Deal
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &deal,
		})
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(record); err != nil {
			return nil, fmt.Errorf("registro %d inválido: %w", i, err)
		}

		set.Deals = append(set.Deals, deal)
	}

	return set, nil
}
