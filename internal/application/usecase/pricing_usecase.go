package usecase

import (
	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
)

// PricingUseCase expone las reglas de precio y cotizaciones.
type PricingUseCase struct {
	calc *pricing.Calculator
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(calc *pricing.Calculator) *PricingUseCase {
	return &PricingUseCase{calc: calc}
}

// Rules devuelve las reglas vigentes.
func (uc *PricingUseCase) Rules() []dto.PricingRuleView {
	rules := uc.calc.Rules()
	out := make([]dto.PricingRuleView, 0, len(rules))
	for _, r := range rules {
		out = append(out, dto.PricingRuleView{
			Name:        r.Name,
			Category:    r.Category,
			BasePrice:   r.BasePrice,
			UnitType:    r.UnitType,
			Description: r.Description,
		})
	}
	return out
}

// Quote calcula el desglose de precio. Papel vacío se toma como A4.
func (uc *PricingUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	paper := in.PaperSize
	if paper == "" {
		paper = entity.PaperA4
	}
	q, err := uc.calc.Quote(pricing.Job{
		Pages:      in.Pages,
		Copies:     in.Copies,
		ColorPrint: in.ColorPrint,
		Duplex:     in.Duplex,
		PaperSize:  paper,
		Binding:    in.Binding,
		Lamination: in.Lamination,
	})
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		Printing:       q.Printing,
		Duplex:         q.Duplex,
		SizeAdjustment: q.SizeAdjustment,
		Binding:        q.Binding,
		Lamination:     q.Lamination,
		TotalPrice:     q.Total,
	}, nil
}
