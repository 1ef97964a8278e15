package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/finwise/backend/internal/models"
)

var csvHeader = []string{"Date", "Description", "Category", "Amount", "Type"}

// CSV writes one line per transaction. The description is always quoted,
// other fields only when they contain separators, quotes or line breaks.
func CSV(w io.Writer, txns []models.Transaction) error {
	b := bufio.NewWriter(w)

	if _, err := b.WriteString(strings.Join(csvHeader, ",") + "\n"); err != nil {
		return err
	}

	for _, t := range txns {
		fields := []string{
			t.Date.UTC().Format(DateLayout),
			quote(t.Description),
			escape(t.Category),
			t.Amount.String(),
			string(t.Type),
		}

		if _, err := b.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}

	return b.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func escape(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}

	return s
}
