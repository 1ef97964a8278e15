// Package export renders transactions as downloadable files.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/finwise/backend/internal/models"
)

// Format is a file format for exports.
//
// swagger:enum Format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// DateLayout is the layout of dates in exported files.
const DateLayout = "2006-01-02"

var ErrFormatInvalid = errors.New("the export format must be one of 'csv', 'json', 'html'")

// ParseFormat parses a format. The empty string selects FormatCSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatHTML:
		return f, nil
	default:
		return "", ErrFormatInvalid
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename returns the name for a download created at t.
func (f Format) Filename(t time.Time) string {
	return fmt.Sprintf("finwise-transactions-%s.%s", t.Format(DateLayout), f)
}

// Write renders the transactions in the format.
func Write(w io.Writer, f Format, txns []models.Transaction) error {
	switch f {
	case FormatCSV:
		return CSV(w, txns)
	case FormatJSON:
		return JSON(w, txns)
	case FormatHTML:
		return HTML(w, txns)
	default:
		return ErrFormatInvalid
	}
}
