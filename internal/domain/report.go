package domain

// ReportSort selects the ordering of a delivery report.
type ReportSort string

// Supported report orderings
const (
	SortByDate     ReportSort = "date"
	SortByCustomer ReportSort = "customer"
	SortByDriver   ReportSort = "driver"
	SortByTotal    ReportSort = "total"
)

// ReportQuery describes an admin delivery report.
type ReportQuery struct {
	Search    string
	SortBy    ReportSort
	Ascending bool
}

// Bucket aggregates a group of deliveries. Name labels driver buckets,
// which are keyed by driver id.
type Bucket struct {
	Name  string
	Count int
	Total int64
}

// DeliveryReport is the admin statistics view over delivered requests.
type DeliveryReport struct {
	Deliveries   []DeliveryRequest
	Count        int
	Revenue      int64
	AverageOrder float64
	ByGasType    map[string]Bucket
	ByDriver     map[string]Bucket
}
