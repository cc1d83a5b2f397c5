package ledger

// ChartType selects how a custom chart is drawn.
type ChartType string

const (
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
)

// Valid reports whether t is a known chart type.
func (t ChartType) Valid() bool {
	switch t {
	case ChartLine, ChartBar, ChartPie, ChartDoughnut:
		return true
	}
	return false
}

// Chart periods. Custom uses the StartDate/EndDate options.
const (
	PeriodLast3       = "last3"
	PeriodLast6       = "last6"
	PeriodLast12      = "last12"
	PeriodCurrentYear = "currentYear"
	PeriodCustom      = "custom"
)

// Chart data sources.
const (
	DataOverview       = "overview"
	DataCategories     = "categories"
	DataAccounts       = "accounts"
	DataCategoryDetail = "categoryDetail"
)

// ChartOptions carries the options specific to a chart's data source.
type ChartOptions struct {
	StartDate        string  `json:"startDate,omitempty"` // YYYY-MM, custom period only
	EndDate          string  `json:"endDate,omitempty"`   // YYYY-MM, custom period only
	ShowIncome       bool    `json:"showIncome,omitempty"`
	ShowExpenses     bool    `json:"showExpenses,omitempty"`
	ShowNet          bool    `json:"showNet,omitempty"`
	ShowNecessity    bool    `json:"showNecessity,omitempty"`
	ShowExtra        bool    `json:"showExtra,omitempty"`
	SelectedAccounts []int64 `json:"selectedAccounts,omitempty"`
	Category         string  `json:"category,omitempty"`
}

// ChartConfig is a saved custom chart. Referential integrity with accounts
// and categories is deliberately not enforced: a config may point at a
// since-deleted account or category and computes an empty series.
type ChartConfig struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Type       ChartType    `json:"type"`
	Period     string       `json:"period"`
	DataSource string       `json:"dataType"`
	Options    ChartOptions `json:"options"`
}
