package orders

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// Formatos de comprobante.
const (
	ReceiptText = "txt"
	ReceiptPDF  = "pdf"
)

// ReceiptUseCase genera el comprobante descargable de un pedido.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	text      ReceiptRenderer
	pdf       ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso. pdf puede ser nil (formato no disponible).
func NewReceiptUseCase(orderRepo repository.OrderRepository, text, pdf ReceiptRenderer) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, text: text, pdf: pdf}
}

// Download genera el comprobante. format vacío equivale a texto.
func (uc *ReceiptUseCase) Download(ctx context.Context, vendorID, orderID, format string) (*dto.Receipt, error) {
	if format == "" {
		format = ReceiptText
	}
	var (
		renderer    ReceiptRenderer
		contentType string
	)
	switch format {
	case ReceiptText:
		renderer, contentType = uc.text, "text/plain; charset=utf-8"
	case ReceiptPDF:
		renderer, contentType = uc.pdf, "application/pdf"
	}
	if renderer == nil {
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}

	o, err := uc.orderRepo.GetForVendor(ctx, orderID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	body, err := renderer.Render(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}
	return &dto.Receipt{
		Filename:    receiptFilename(o.Order.FileName, format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

// receiptFilename: el texto conserva el nombre del archivo cambiando .pdf por .txt;
// el PDF usa <base>-receipt.pdf para no confundirse con el documento del estudiante.
func receiptFilename(fileName, format string) string {
	if fileName == "" {
		fileName = "order"
	}
	if format == ReceiptText {
		return strings.Replace(fileName, ".pdf", ".txt", 1)
	}
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return base + "-receipt.pdf"
}
