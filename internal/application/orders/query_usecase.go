package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
)

// HistoryLimit máximo de pedidos en el historial.
const HistoryLimit = 50

// QueryUseCase lecturas de pedidos del vendedor.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// Get devuelve el detalle del pedido o ErrNotFound si no existe o es de otro vendedor.
func (uc *QueryUseCase) Get(ctx context.Context, vendorID, orderID string) (*dto.OrderDetail, error) {
	o, err := uc.orderRepo.GetForVendor(ctx, orderID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	detail := toOrderDetail(o)
	return &detail, nil
}

// History últimos pedidos del vendedor, más recientes primero.
func (uc *QueryUseCase) History(ctx context.Context, vendorID string) ([]dto.OrderHistoryItem, error) {
	list, err := uc.orderRepo.ListByVendor(ctx, vendorID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("historial: %w", err)
	}
	out := make([]dto.OrderHistoryItem, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrderHistoryItem{
			ID:            o.Order.ID,
			OrderNumber:   o.Order.OrderNumber,
			StudentName:   o.StudentName(),
			FileName:      o.Order.FileName,
			FileSize:      o.Order.FileSize,
			Copies:        o.Order.Copies,
			Pages:         o.Order.PageCount,
			Amount:        o.Order.TotalPrice,
			Status:        o.Order.Status,
			PaymentStatus: o.PaymentStatus(),
			ColorPrint:    o.Order.ColorPrint,
			Duplex:        o.Order.Duplex,
			PaperSize:     o.Order.PaperSize,
			Notes:         notesPtr(o.Order.Notes),
			CreatedAt:     o.Order.CreatedAt,
			UpdatedAt:     o.Order.UpdatedAt,
		})
	}
	return out, nil
}

func toOrderDetail(o *entity.OrderWithRelations) dto.OrderDetail {
	d := dto.OrderDetail{
		ID:               o.Order.ID,
		OrderNumber:      o.Order.OrderNumber,
		Status:           o.Order.Status,
		Priority:         o.Order.Priority,
		FileName:         o.Order.FileName,
		OriginalFileName: o.Order.OriginalFileName,
		FileSize:         o.Order.FileSize,
		FileURL:          o.Order.FileURL,
		Pages:            o.Order.PageCount,
		Copies:           o.Order.Copies,
		ColorPrint:       o.Order.ColorPrint,
		Duplex:           o.Order.Duplex,
		PaperSize:        o.Order.PaperSize,
		Amount:           o.Order.TotalPrice,
		Notes:            notesPtr(o.Order.Notes),
		DueDate:          o.Order.DueDate,
		CompletedAt:      o.Order.CompletedAt,
		CreatedAt:        o.Order.CreatedAt,
		UpdatedAt:        o.Order.UpdatedAt,
	}
	if s := o.Student; s != nil {
		d.Student = dto.StudentView{
			ID:         s.ID,
			Name:       s.Name,
			Email:      s.Email,
			Phone:      s.Phone,
			RollNumber: s.RollNumber,
			Department: s.Department,
		}
	}
	if p := o.Payment; p != nil {
		d.Payment = &dto.PaymentView{
			ID:            p.ID,
			Amount:        p.Amount,
			Method:        p.Method,
			TransactionID: p.TransactionID,
			Status:        p.Status,
			PaidAt:        p.PaidAt,
		}
	}
	return d
}

// notesPtr las notas vacías se serializan como null.
func notesPtr(notes string) *string {
	if notes == "" {
		return nil
	}
	return &notes
}
