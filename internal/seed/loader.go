package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

// FromCSV reads a replacement catalog from a CSV export with a header row of
// at least: sku, name, category_id, price, stock. Extra columns are ignored.
// Rows without a SKU are skipped. Ids are taken from the sku column so
// repeated loads stay stable.
func FromCSV(r io.Reader) ([]domain.Product, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas

	headers, err := csvr.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"sku", "name", "category_id", "price", "stock"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("catalog csv: missing column %q", required)
		}
	}

	var products []domain.Product
	for {
		record, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		sku := strings.TrimSpace(field(record, index, "sku"))
		if sku == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(field(record, index, "price")))
		if err != nil {
			return nil, fmt.Errorf("catalog csv: sku %s: parse price: %w", sku, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("catalog csv: sku %s: negative price", sku)
		}
		stock, err := strconv.Atoi(strings.TrimSpace(field(record, index, "stock")))
		if err != nil {
			return nil, fmt.Errorf("catalog csv: sku %s: parse stock: %w", sku, err)
		}
		if stock < 0 {
			return nil, fmt.Errorf("catalog csv: sku %s: negative stock", sku)
		}

		products = append(products, domain.Product{
			ID:         sku,
			Name:       strings.TrimSpace(field(record, index, "name")),
			CategoryID: strings.TrimSpace(field(record, index, "category_id")),
			Price:      price,
			Stock:      stock,
			SKU:        sku,
			Image:      strings.TrimSpace(field(record, index, "image")),
		})
	}
	return products, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
