package entity

// InventorySummary aggregates one whole catalog for the chat context: total
// available count, up to five distinct breeds, and the price spread. It is
// computed over the entire available stock, not just search candidates.
type InventorySummary struct {
	Count    int64
	Breeds   []string
	MinPrice float64
	MaxPrice float64
}
