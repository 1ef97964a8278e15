package category

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classifier suggests a category for a transaction description.
type Classifier struct {
	rules    []Rule
	fallback Fallback
}

// NewClassifier returns a classifier for the ordered rules. Descriptions
// that no rule matches are passed to fallback.
func NewClassifier(rules []Rule, fallback Fallback) *Classifier {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		keyword := lower(strings.TrimSpace(r.Keyword))
		if keyword == "" {
			continue
		}

		normalized = append(normalized, Rule{Keyword: keyword, Category: r.Category})
	}

	if fallback == nil {
		fallback = StaticFallback(Other)
	}

	return &Classifier{
		rules:    normalized,
		fallback: fallback,
	}
}

// Classify returns the category of the first rule whose keyword occurs in
// the description, or the fallback's choice.
func (c *Classifier) Classify(description string) string {
	if rule, ok := c.Match(description); ok {
		return rule.Category
	}

	return c.fallback.Fallback(description)
}

// Match returns the first rule matching the description.
func (c *Classifier) Match(description string) (Rule, bool) {
	d := lower(strings.TrimSpace(description))
	if d == "" {
		return Rule{}, false
	}

	for _, rule := range c.rules {
		if glob.Glob("*"+rule.Keyword+"*", d) {
			return rule, true
		}
	}

	return Rule{}, false
}

// Rules returns a copy of the keyword table in matching order.
func (c *Classifier) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// lower folds s to lower case. A new Caser is used on every call since
// Casers are not safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
