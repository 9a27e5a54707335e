package inventory

// DefaultReorderLevel applies to stock rows without a reorder level.
const DefaultReorderLevel = 10

// StockItem is one (hospital, medication) stock position below its reorder
// level. Shortfall is only populated for critical stock listings.
type StockItem struct {
	HID            int64  `json:"HID"`
	HospitalName   string `json:"HospitalName"`
	MID            int64  `json:"MID"`
	MedicationName string `json:"MedicationName"`
	Quantity       int    `json:"Quantity"`
	ReorderLevel   int    `json:"ReorderLevel"`
	Shortfall      int    `json:"Shortfall,omitempty"`
}

// StockStatus counts stock rows per level. With r the reorder level:
// Critical qty < r/2, Low qty < r, Normal qty < 2r, High otherwise.
type StockStatus struct {
	Critical int `json:"critical"`
	Low      int `json:"low"`
	Normal   int `json:"normal"`
	High     int `json:"high"`
}

var StatusLabels = []string{"Critical", "Low", "Normal", "High"}

// Levels returns the counts in StatusLabels order.
func (s StockStatus) Levels() []int {
	return []int{s.Critical, s.Low, s.Normal, s.High}
}

// Classify returns the StatusLabels entry for a single stock position.
func Classify(qty, reorderLevel int) string {
	switch {
	case qty*2 < reorderLevel:
		return "Critical"
	case qty < reorderLevel:
		return "Low"
	case qty < reorderLevel*2:
		return "Normal"
	default:
		return "High"
	}
}
