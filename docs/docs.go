// Package docs registra el documento OpenAPI de la API en swaggo/swag.
package docs

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "JPRINT Vendor API",
	Description:      "Panel del vendedor: pedidos de impresión, pagos, ventas y precios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Ensure garantiza que path contenga el documento; si no existe lo escribe desde el registrado.
// Devuelve la ruta a usar por Swagger UI.
func Ensure(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return "", fmt.Errorf("docs: leer documento: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("docs: crear directorio: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("docs: escribir %s: %w", path, err)
	}
	return path, nil
}
