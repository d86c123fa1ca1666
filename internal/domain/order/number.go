package order

import (
	"fmt"
	"strings"
)

// orderNumberPrefix prefijo de todos los números de pedido.
const orderNumberPrefix = "JPT"

// Number construye el número legible del pedido: JPT + sector sin guiones + secuencia
// de al menos 2 dígitos. Ej: ("SEC-128", 3) → "JPTSEC12803".
func Number(sector string, seq int) string {
	return fmt.Sprintf("%s%s%02d", orderNumberPrefix, strings.ReplaceAll(sector, "-", ""), seq)
}
