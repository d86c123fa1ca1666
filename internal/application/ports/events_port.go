package ports

import "github.com/shopspring/decimal"

// OrderEvents recibe los hechos de negocio ya confirmados (después del commit).
// La implementación de producción los exporta como métricas Prometheus.
type OrderEvents interface {
	OrderCreated(vendorID string)
	OrderStatusChanged(from, to string)
	SaleRecorded(amount decimal.Decimal)
	PaymentStatusChanged(status string)
}

// NopOrderEvents descarta los eventos.
type NopOrderEvents struct{}

func (NopOrderEvents) OrderCreated(string)               {}
func (NopOrderEvents) OrderStatusChanged(string, string) {}
func (NopOrderEvents) SaleRecorded(decimal.Decimal)      {}
func (NopOrderEvents) PaymentStatusChanged(string)       {}
