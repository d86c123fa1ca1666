// Package xmlexport serializa el reporte de ventas diario a XML.
package xmlexport

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
)

// ContentType de la respuesta XML.
const ContentType = "application/xml; charset=utf-8"

// SalesReport construye el documento:
//
//	<salesReport date=".." vendor=".." sector="..">
//	  <summary totalOrders=".." totalRevenue=".." totalPages=".." averageOrderValue=".."/>
//	  <paymentBreakdown><method name="UPI" amount=".."/>...</paymentBreakdown>
//	  <orders><order orderNumber="..">...</order></orders>
//	</salesReport>
func SalesReport(r *dto.SalesReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("xmlexport: reporte vacío")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("salesReport")
	root.CreateAttr("date", r.Date)
	root.CreateAttr("vendor", r.Vendor)
	root.CreateAttr("sector", r.Sector)

	sum := root.CreateElement("summary")
	sum.CreateAttr("totalOrders", strconv.Itoa(r.Summary.TotalOrders))
	sum.CreateAttr("totalRevenue", r.Summary.TotalRevenue.StringFixed(2))
	sum.CreateAttr("totalPages", strconv.Itoa(r.Summary.TotalPages))
	sum.CreateAttr("averageOrderValue", r.Summary.AverageOrderValue.StringFixed(2))

	// Métodos ordenados: el mapa no garantiza orden y el XML debe ser estable.
	breakdown := root.CreateElement("paymentBreakdown")
	methods := make([]string, 0, len(r.PaymentBreakdown))
	for m := range r.PaymentBreakdown {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	for _, m := range methods {
		el := breakdown.CreateElement("method")
		el.CreateAttr("name", m)
		el.CreateAttr("amount", r.PaymentBreakdown[m].StringFixed(2))
	}

	orders := root.CreateElement("orders")
	for _, o := range r.Orders {
		el := orders.CreateElement("order")
		el.CreateAttr("orderNumber", o.OrderNumber)
		el.CreateElement("studentName").SetText(o.StudentName)
		el.CreateElement("fileName").SetText(o.FileName)
		el.CreateElement("pages").SetText(strconv.Itoa(o.Pages))
		el.CreateElement("copies").SetText(strconv.Itoa(o.Copies))
		el.CreateElement("totalPrice").SetText(o.TotalPrice.StringFixed(2))
		el.CreateElement("paymentMethod").SetText(o.PaymentMethod)
		el.CreateElement("completedAt").SetText(o.CompletedAt.Format(time.RFC3339))
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
