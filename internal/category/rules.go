package category

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoCategories = errors.New("the rules file does not define any categories")

// rulesFile is the format of a category rules file:
//
//	categories:
//	  - name: Food & Dining
//	    color: "#FF6B6B"
//	    type: expense
//	    keywords: ["uber eats", restaurant]
type rulesFile struct {
	Categories []struct {
		Category `yaml:",inline"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
}

// ParseRules parses a YAML rules document into the category set and the
// keyword table. Keywords keep the order of the document.
func ParseRules(data []byte) (Set, []Rule, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing category rules: %w", err)
	}

	if len(f.Categories) == 0 {
		return nil, nil, ErrNoCategories
	}

	set := make(Set, 0, len(f.Categories))
	rules := make([]Rule, 0)
	for _, c := range f.Categories {
		if c.Color == "" {
			c.Color = UnknownColor
		}

		set = append(set, c.Category)
		for _, k := range c.Keywords {
			rules = append(rules, Rule{Keyword: k, Category: c.Name})
		}
	}

	return set, rules, nil
}

// LoadRules reads a YAML rules file. An empty path returns the defaults.
func LoadRules(path string) (Set, []Rule, error) {
	if path == "" {
		return Defaults, DefaultRules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading category rules: %w", err)
	}

	return ParseRules(data)
}
