package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// LoadVendorsCSV lee vendedores desde CSV con cabecera name,email,password,sector
// (en cualquier orden). charset: "" o UTF-8, ISO-8859-1, WINDOWS-1252.
// Las hojas exportadas desde Excel suelen llegar en Latin-1.
func LoadVendorsCSV(r io.Reader, charset string) ([]VendorSeed, error) {
	dec, err := decoderFor(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(dec)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("seed: leer cabecera CSV: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range []string{"name", "email", "password", "sector"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("seed: falta la columna %q", col)
		}
	}

	var out []VendorSeed
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("seed: línea %d: %w", line, err)
		}
		out = append(out, VendorSeed{
			Name:     strings.TrimSpace(rec[idx["name"]]),
			Email:    strings.TrimSpace(rec[idx["email"]]),
			Password: rec[idx["password"]],
			Sector:   strings.TrimSpace(rec[idx["sector"]]),
		})
	}
	return out, nil
}

func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToUpper(strings.TrimSpace(charset)) {
	case "", "UTF-8", "UTF8":
		return r, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("seed: charset no soportado %q", charset)
	}
}
