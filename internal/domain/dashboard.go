package domain

// DashboardKpi is the headline block of the overview.
type DashboardKpi struct {
	TotalTraffic           int            `json:"totalTraffic"`
	DominantPaymentCluster PaymentCluster `json:"dominantPaymentCluster"`
	DominantShift          string         `json:"dominantShift"`
	TotalActiveGates       int            `json:"totalActiveGates"`
}

// PaymentMethodData is the per-method breakdown entry, tagged with the
// cluster the method belongs to.
type PaymentMethodData struct {
	Method  PaymentMethod  `json:"method"`
	Cluster PaymentCluster `json:"cluster"`
	Count   int            `json:"count"`
}

// GateTraffic is the summed traffic of one gate, name resolved via lookup.
type GateTraffic struct {
	GateName string `json:"gateName"`
	Traffic  int    `json:"traffic"`
}

// ShiftTraffic is the summed traffic of one shift.
type ShiftTraffic struct {
	ShiftName string `json:"shiftName"`
	Traffic   int    `json:"traffic"`
}

// BranchTraffic is the summed traffic of one ruas.
type BranchTraffic struct {
	BranchName string `json:"branchName"`
	Traffic    int    `json:"traffic"`
}

// DashboardInsights carries the derived natural-language highlights.
// Percentages are integers in [0,100]; zero when there is no traffic.
type DashboardInsights struct {
	General           []string `json:"general"`
	Payment           string   `json:"payment"`
	Shift             string   `json:"shift"`
	Gate              string   `json:"gate"`
	Branch            string   `json:"branch,omitempty"`
	PaymentPercentage int      `json:"paymentPercentage"`
	ShiftPercentage   int      `json:"shiftPercentage"`
}

// DashboardOverview is the full overview snapshot, rebuilt from the current
// dataset on every request and never mutated in place.
type DashboardOverview struct {
	Kpi            DashboardKpi        `json:"kpi"`
	PaymentMethods []PaymentMethodData `json:"paymentMethods"`
	GateTraffic    []GateTraffic       `json:"gateTraffic"`
	ShiftTraffic   []ShiftTraffic      `json:"shiftTraffic"`
	BranchTraffic  []BranchTraffic     `json:"branchTraffic"`
	Insights       DashboardInsights   `json:"insights"`
}

// DashboardConfig carries the overview parameters. FilterDate is a machine
// date string or empty; TopN bounds the gate chart (default 6).
type DashboardConfig struct {
	FilterDate string `json:"filterDate"`
	TopN       int    `json:"topN"`
}
