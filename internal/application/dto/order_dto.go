package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateOrderStatusRequest entrada de PUT /api/orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummary vista resumida de un pedido (actualización de estado y creación).
type OrderSummary struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	Status        string          `json:"status"`
	StudentName   string          `json:"studentName"`
	FileName      string          `json:"fileName"`
	Copies        int             `json:"copies"`
	Pages         int             `json:"pages"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"paymentStatus"`
}

// OrderMutationResponse cuerpo de PUT /api/orders/:id y POST /api/orders.
type OrderMutationResponse struct {
	Success bool         `json:"success"`
	Order   OrderSummary `json:"order"`
}

// OrderHistoryItem fila de GET /api/orders/history.
type OrderHistoryItem struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	StudentName   string          `json:"studentName"`
	FileName      string          `json:"fileName"`
	FileSize      int64           `json:"fileSize"`
	Copies        int             `json:"copies"`
	Pages         int             `json:"pages"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	ColorPrint    bool            `json:"colorPrint"`
	Duplex        bool            `json:"duplex"`
	PaperSize     string          `json:"paperSize"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// OrderHistoryResponse cuerpo de GET /api/orders/history.
type OrderHistoryResponse struct {
	Orders []OrderHistoryItem `json:"orders"`
}

// StudentView estudiante dentro del detalle de pedido.
type StudentView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
}

// OrderDetail vista completa de GET /api/orders/:id.
type OrderDetail struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"orderNumber"`
	Status           string          `json:"status"`
	Priority         string          `json:"priority"`
	Student          StudentView     `json:"student"`
	FileName         string          `json:"fileName"`
	OriginalFileName string          `json:"originalFileName"`
	FileSize         int64           `json:"fileSize"`
	FileURL          string          `json:"fileUrl"`
	Pages            int             `json:"pages"`
	Copies           int             `json:"copies"`
	ColorPrint       bool            `json:"colorPrint"`
	Duplex           bool            `json:"duplex"`
	PaperSize        string          `json:"paperSize"`
	Amount           decimal.Decimal `json:"amount"`
	Notes            *string         `json:"notes"`
	DueDate          *time.Time      `json:"dueDate"`
	CompletedAt      *time.Time      `json:"completedAt"`
	Payment          *PaymentView    `json:"payment"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// OrderDetailResponse cuerpo de GET /api/orders/:id.
type OrderDetailResponse struct {
	Order OrderDetail `json:"order"`
}

// StudentInput datos del estudiante al crear un pedido.
type StudentInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
}

// CreateOrderRequest entrada de POST /api/orders.
type CreateOrderRequest struct {
	Student          StudentInput `json:"student"`
	FileName         string       `json:"fileName"`
	OriginalFileName string       `json:"originalFileName"`
	FileSize         int64        `json:"fileSize"`
	FileURL          string       `json:"fileUrl"`
	PageCount        int          `json:"pageCount"`
	Copies           int          `json:"copies"`
	ColorPrint       bool         `json:"colorPrint"`
	Duplex           bool         `json:"duplex"`
	PaperSize        string       `json:"paperSize"`
	Binding          bool         `json:"binding"`
	Lamination       bool         `json:"lamination"`
	Priority         string       `json:"priority"`
	Notes            string       `json:"notes"`
	DueDate          *time.Time   `json:"dueDate"`
	PaymentMethod    string       `json:"paymentMethod"`
}

// Receipt comprobante descargable de un pedido.
type Receipt struct {
	Filename    string
	ContentType string
	Body        []byte
}
