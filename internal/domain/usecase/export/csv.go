package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
)

var csvHeader = []string{"Transaction ID", "Phone Number", "Bundle", "Date"}

// FileName returns the attachment name for an export taken at t
func FileName(t time.Time) string {
	return fmt.Sprintf("orders-%s.csv", t.UTC().Format("2006-01-02"))
}

// FormatCSV renders claimed orders as reference, phone, bundle size and ISO creation time
func FormatCSV(orders []*entity.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, tx := range orders {
		phone := tx.Metadata.PhoneNumberReceivingData
		if phone == "" {
			phone = entity.Placeholder
		}
		record := []string{
			tx.Reference,
			phone,
			entity.BundleSize(tx.BundleName),
			entity.FormatISOTimestamp(tx.CreatedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
