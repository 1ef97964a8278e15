package export

import (
	"html/template"
	"io"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/models"
)

var page = template.Must(template.New("export").Funcs(template.FuncMap{
	"date": func(t models.Transaction) string { return t.Date.UTC().Format(DateLayout) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>FinWise transactions</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
td.amount { text-align: right; }
.income { color: #1e8449; }
.expense { color: #c0392b; }
</style>
</head>
<body>
<h1>FinWise transactions</h1>
<p>Income: {{ .Summary.Income.StringFixed 2 }} · Expenses: {{ .Summary.Expenses.StringFixed 2 }} · Balance: {{ .Summary.Balance.StringFixed 2 }}</p>
<table>
<thead><tr><th>Date</th><th>Description</th><th>Category</th><th>Amount</th><th>Type</th></tr></thead>
<tbody>
{{- range .Transactions }}
<tr class="{{ .Type }}"><td>{{ date . }}</td><td>{{ .Description }}</td><td>{{ .Category }}</td><td class="amount">{{ .Amount.StringFixed 2 }}</td><td>{{ .Type }}</td></tr>
{{- end }}
</tbody>
</table>
</body>
</html>
`))

// HTML writes a printable page with a table of the transactions.
func HTML(w io.Writer, txns []models.Transaction) error {
	return page.Execute(w, struct {
		Summary      finance.Summary
		Transactions []models.Transaction
	}{
		Summary:      finance.Summarize(txns),
		Transactions: txns,
	})
}
