package domain

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// LalinTab selects which payment clusters the report table shows.
type LalinTab string

const (
	TabSemua    LalinTab = "Semua"
	TabTunai    LalinTab = "Tunai"
	TabEToll    LalinTab = "E-Toll"
	TabFlo      LalinTab = "Flo"
	TabKTP      LalinTab = "KTP"
	TabGabungan LalinTab = "E-Toll + Tunai + Flo"
)

// LalinTableRow is one normalized report row: a
// (ruas, gerbang, gardu, shift, tanggal, payment cluster) combination with
// per-golongan sums. TanggalRaw is the machine-sortable form ("2006-01-02"),
// Tanggal the display form. TotalLalin is always positive; zero-total
// combinations are dropped during normalization.
type LalinTableRow struct {
	ID               int            `json:"id"`
	Ruas             string         `json:"Ruas"`
	Gerbang          string         `json:"Gerbang"`
	Gardu            int64          `json:"Gardu"`
	Shift            int            `json:"Shift"`
	Hari             string         `json:"Hari"`
	Tanggal          string         `json:"Tanggal"`
	TanggalRaw       string         `json:"TanggalRaw"`
	MetodePembayaran PaymentCluster `json:"MetodePembayaran"`
	Gol1             int            `json:"Gol1"`
	Gol2             int            `json:"Gol2"`
	Gol3             int            `json:"Gol3"`
	Gol4             int            `json:"Gol4"`
	Gol5             int            `json:"Gol5"`
	TotalLalin       int            `json:"TotalLalin"`
}

// LalinSortField names a sortable column of the report table.
type LalinSortField string

const (
	SortRuas       LalinSortField = "Ruas"
	SortGerbang    LalinSortField = "Gerbang"
	SortGardu      LalinSortField = "Gardu"
	SortShift      LalinSortField = "Shift"
	SortHari       LalinSortField = "Hari"
	SortTanggal    LalinSortField = "Tanggal"
	SortGol1       LalinSortField = "Gol1"
	SortGol2       LalinSortField = "Gol2"
	SortGol3       LalinSortField = "Gol3"
	SortGol4       LalinSortField = "Gol4"
	SortGol5       LalinSortField = "Gol5"
	SortTotalLalin LalinSortField = "TotalLalin"
)

// LalinSortConfig pairs a sort field with a direction.
type LalinSortConfig struct {
	Field     LalinSortField `json:"field"`
	Direction SortDirection  `json:"direction"`
}

// LalinReportConfig carries every parameter of one report computation.
// FilterDate is a machine date string or empty for no date filter.
type LalinReportConfig struct {
	FilterDate  string          `json:"filterDate"`
	FilterTab   LalinTab        `json:"filterTab"`
	SearchQuery string          `json:"searchQuery"`
	Sort        LalinSortConfig `json:"sortConfig"`
	Page        int             `json:"page"`
	PageSize    int             `json:"pageSize"`
}

// LalinKpiSummary holds per-cluster totals over the filtered row set.
type LalinKpiSummary struct {
	TotalTunai int `json:"totalTunai"`
	TotalEToll int `json:"totalEToll"`
	TotalFlo   int `json:"totalFlo"`
	TotalKTP   int `json:"totalKTP"`
	TotalAll   int `json:"totalAll"`
}

// LalinSubtotal is the traffic subtotal of one ruas. Subtotals keep the
// first-seen order of branches in the filtered set.
type LalinSubtotal struct {
	Ruas  string `json:"ruas"`
	Total int    `json:"total"`
}

// LalinViewData is the report view model: the filtered set, the visible page,
// and the aggregates (computed over the filtered pre-pagination set).
type LalinViewData struct {
	Rows          []LalinTableRow `json:"rows"`
	PaginatedRows []LalinTableRow `json:"paginatedRows"`
	TotalRows     int             `json:"totalRows"`
	TotalPages    int             `json:"totalPages"`
	Kpi           LalinKpiSummary `json:"kpi"`
	Subtotals     []LalinSubtotal `json:"subtotals"`
	GrandTotal    int             `json:"grandTotal"`
}

// GerbangSortConfig sorts the master table by any record field; an empty
// field leaves the input order untouched.
type GerbangSortConfig struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// GerbangListConfig carries the master-table listing parameters.
type GerbangListConfig struct {
	SearchQuery string            `json:"searchQuery"`
	Sort        GerbangSortConfig `json:"sortConfig"`
	Page        int               `json:"page"`
	PageSize    int               `json:"pageSize"`
}

// GerbangViewData is the master-table view model. TotalItems counts the
// filtered set before pagination.
type GerbangViewData struct {
	PaginatedData []Gerbang `json:"paginatedData"`
	TotalItems    int       `json:"totalItems"`
	TotalPages    int       `json:"totalPages"`
}
