package narrator

import (
	"context"
	"fmt"
	"time"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// RatioThreshold is the share of income spent from which spending is
	// flagged.
	RatioThreshold = decimal.NewFromFloat(0.7)

	// SavingsTarget is the savings rate in percent recommended by tips.
	SavingsTarget = decimal.NewFromInt(20)

	seasonalMultiplier = decimal.NewFromFloat(1.2)
	three              = decimal.NewFromInt(3)
)

var (
	adjectives = []string{"steady", "stable", "consistent", "moderate"}
	extraTips  = []string{
		"Review your subscriptions every few months and cancel the ones you no longer use.",
		"Set up an automatic transfer to your savings account on payday.",
		"Plan larger purchases ahead and compare prices before buying.",
		"Keep an emergency fund that covers three to six months of expenses.",
		"Cook at home more often to reduce food spending.",
	}
)

// Local generates commentary from templates. It never fails.
type Local struct {
	random  Random
	colors  finance.Colors
	now     func() time.Time
	printer *message.Printer
}

// NewLocal returns a template generator. random decorates the texts, now
// determines the season for predictions.
func NewLocal(random Random, colors finance.Colors, now func() time.Time) *Local {
	if now == nil {
		now = time.Now
	}

	return &Local{
		random:  random,
		colors:  colors,
		now:     now,
		printer: message.NewPrinter(language.English),
	}
}

func (l *Local) Narrate(_ context.Context, txns []models.Transaction, kind Kind) (string, error) {
	if !kind.Valid() {
		return "", ErrKindInvalid
	}

	if len(txns) == 0 {
		return bullets("No transactions recorded yet. Add some income and expenses to get personalized insights."), nil
	}

	summary := finance.Summarize(txns)
	categories := finance.CategoryTotals(txns, l.colors)

	switch kind {
	case KindPredictions:
		return l.predictions(summary, categories), nil
	case KindTips:
		return l.tips(summary, categories), nil
	default:
		return l.insights(summary, categories), nil
	}
}

func (l *Local) money(d decimal.Decimal) string {
	return l.printer.Sprintf("$%.2f", d.InexactFloat64())
}

func (l *Local) percent(d decimal.Decimal) string {
	return l.printer.Sprintf("%.1f%%", d.InexactFloat64())
}

// ratio returns expenses as share of income. ok is false without income.
func ratio(s finance.Summary) (decimal.Decimal, bool) {
	if s.Income.IsZero() {
		return decimal.Zero, false
	}

	return s.Expenses.Div(s.Income), true
}

func (l *Local) insights(s finance.Summary, categories []finance.CategoryTotal) string {
	lines := make([]string, 0, 4)

	if len(categories) > 0 {
		top := categories[0]
		lines = append(lines, fmt.Sprintf("Your largest spending category is %s with %s (%s of all expenses).", top.Name, l.money(top.Total), l.percent(top.Percentage)))
	}

	if r, ok := ratio(s); ok {
		assessment := "within a healthy range"
		if r.GreaterThanOrEqual(RatioThreshold) {
			assessment = "higher than recommended"
		}

		lines = append(lines, fmt.Sprintf("You spend %s of your income, which is %s.", l.percent(r.Mul(decimal.NewFromInt(100))), assessment))
	} else {
		lines = append(lines, "You have not recorded any income yet.")
	}

	lines = append(lines,
		l.printer.Sprintf("You recorded %d transactions: %d income and %d expenses.", s.TransactionCount, s.IncomeCount, s.ExpenseCount),
		fmt.Sprintf("Your savings rate is %s.", l.percent(s.SavingsRate)),
	)

	return bullets(lines...)
}

// seasonal reports whether the month is in the high spending season at the
// end of the year.
func seasonal(m time.Month) bool {
	return m >= time.October
}

func (l *Local) predictions(s finance.Summary, categories []finance.CategoryTotal) string {
	runRate := s.Expenses.Div(three)

	multiplier := decimal.NewFromInt(1)
	isSeasonal := seasonal(l.now().Month())
	if isSeasonal {
		multiplier = seasonalMultiplier
	}

	projected := runRate.Mul(multiplier).Mul(three)
	confidence := 70 + l.random.Intn(25)

	lines := []string{
		fmt.Sprintf("Your average monthly spending is about %s.", l.money(runRate)),
		fmt.Sprintf("With %s habits, expect to spend about %s over the next three months.", pick(l.random, adjectives), l.money(projected)),
	}

	if isSeasonal {
		lines = append(lines, "Spending usually rises towards the end of the year, the projection includes a 20% seasonal increase.")
	}

	if len(categories) > 0 {
		lines = append(lines, fmt.Sprintf("%s is likely to remain your largest expense.", categories[0].Name))
	}

	lines = append(lines, fmt.Sprintf("Confidence of this prediction: %d%%.", confidence))
	return bullets(lines...)
}

func (l *Local) tips(s finance.Summary, categories []finance.CategoryTotal) string {
	lines := make([]string, 0, 4)

	if len(categories) > 0 {
		top := categories[0]
		lines = append(lines, fmt.Sprintf("Review your %s spending, it makes up %s of your expenses.", top.Name, l.percent(top.Percentage)))
	}

	if r, ok := ratio(s); ok && r.GreaterThanOrEqual(RatioThreshold) {
		lines = append(lines, fmt.Sprintf("Try to keep your expenses below %s of your income.", l.percent(RatioThreshold.Mul(decimal.NewFromInt(100)))))
	} else if ok {
		lines = append(lines, "Your expenses are well balanced against your income, keep it up.")
	}

	if s.SavingsRate.LessThan(SavingsTarget) {
		lines = append(lines, fmt.Sprintf("Aim to save at least %s of your income.", l.percent(SavingsTarget)))
	} else {
		lines = append(lines, "Consider investing part of your savings for long term growth.")
	}

	lines = append(lines, pick(l.random, extraTips))
	return bullets(lines...)
}
