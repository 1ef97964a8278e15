package category

// Rule maps a keyword found in a description to a category.
//
// The keyword matches anywhere in the lower-cased description and may
// contain "*" wildcards.
type Rule struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Category string `json:"category" yaml:"category"`
}

// DefaultRules is the keyword table. The first matching rule wins, so
// more specific keywords come before the ones they contain ("uber eats"
// before "uber").
var DefaultRules = []Rule{
	// Food & Dining
	{"uber eats", "Food & Dining"},
	{"doordash", "Food & Dining"},
	{"grubhub", "Food & Dining"},
	{"restaurant", "Food & Dining"},
	{"cafe", "Food & Dining"},
	{"coffee", "Food & Dining"},
	{"starbucks", "Food & Dining"},
	{"mcdonald", "Food & Dining"},
	{"pizza", "Food & Dining"},
	{"grocery", "Food & Dining"},
	{"groceries", "Food & Dining"},
	{"supermarket", "Food & Dining"},
	{"whole foods", "Food & Dining"},
	{"lunch", "Food & Dining"},
	{"dinner", "Food & Dining"},

	// Shopping
	{"amazon", "Shopping"},
	{"walmart", "Shopping"},
	{"target", "Shopping"},
	{"ebay", "Shopping"},
	{"best buy", "Shopping"},
	{"ikea", "Shopping"},
	{"clothing", "Shopping"},
	{"shopping mall", "Shopping"},

	// Transportation
	{"uber", "Transportation"},
	{"lyft", "Transportation"},
	{"gas", "Transportation"},
	{"taxi", "Transportation"},
	{"shell", "Transportation"},
	{"fuel", "Transportation"},
	{"parking", "Transportation"},
	{"metro", "Transportation"},
	{"bus fare", "Transportation"},
	{"train", "Transportation"},

	// Entertainment
	{"netflix", "Entertainment"},
	{"spotify", "Entertainment"},
	{"hulu", "Entertainment"},
	{"disney", "Entertainment"},
	{"movie", "Entertainment"},
	{"cinema", "Entertainment"},
	{"concert", "Entertainment"},
	{"steam", "Entertainment"},
	{"game", "Entertainment"},

	// Bills & Utilities
	{"electric", "Bills & Utilities"},
	{"water bill", "Bills & Utilities"},
	{"internet", "Bills & Utilities"},
	{"phone bill", "Bills & Utilities"},
	{"verizon", "Bills & Utilities"},
	{"comcast", "Bills & Utilities"},
	{"rent", "Bills & Utilities"},
	{"mortgage", "Bills & Utilities"},
	{"insurance", "Bills & Utilities"},
	{"utility", "Bills & Utilities"},

	// Healthcare
	{"pharmacy", "Healthcare"},
	{"cvs", "Healthcare"},
	{"walgreens", "Healthcare"},
	{"doctor", "Healthcare"},
	{"dentist", "Healthcare"},
	{"hospital", "Healthcare"},
	{"clinic", "Healthcare"},
	{"gym", "Healthcare"},

	// Education
	{"tuition", "Education"},
	{"course", "Education"},
	{"udemy", "Education"},
	{"coursera", "Education"},
	{"bookstore", "Education"},
	{"school", "Education"},

	// Travel
	{"hotel", "Travel"},
	{"airbnb", "Travel"},
	{"airline", "Travel"},
	{"flight", "Travel"},
	{"expedia", "Travel"},
	{"booking.com", "Travel"},

	// Income
	{"salary", "Salary"},
	{"paycheck", "Salary"},
	{"payroll", "Salary"},
	{"deposit", "Salary"},
	{"freelance", "Freelance"},
	{"invoice", "Freelance"},
	{"client payment", "Freelance"},
	{"dividend", "Investments"},
	{"interest", "Investments"},
	{"stock", "Investments"},
	{"crypto", "Investments"},
}
