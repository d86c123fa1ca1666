package dto

import "github.com/shopspring/decimal"

// PricingRuleView regla de precio publicada.
type PricingRuleView struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	UnitType    string          `json:"unitType"`
	Description string          `json:"description"`
}

// PricingRulesResponse respuesta de GET /api/pricing/rules.
type PricingRulesResponse struct {
	Rules []PricingRuleView `json:"rules"`
}

// QuoteRequest entrada de POST /api/pricing/quote.
type QuoteRequest struct {
	Pages      int    `json:"pages"`
	Copies     int    `json:"copies"`
	ColorPrint bool   `json:"colorPrint"`
	Duplex     bool   `json:"duplex"`
	PaperSize  string `json:"paperSize"`
	Binding    bool   `json:"binding"`
	Lamination bool   `json:"lamination"`
}

// QuoteResponse desglose de precio.
type QuoteResponse struct {
	Printing       decimal.Decimal `json:"printing"`
	Duplex         decimal.Decimal `json:"duplex"`
	SizeAdjustment decimal.Decimal `json:"sizeAdjustment"`
	Binding        decimal.Decimal `json:"binding"`
	Lamination     decimal.Decimal `json:"lamination"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
}
