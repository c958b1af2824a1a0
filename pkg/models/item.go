package models

// ItemStatus defines the possible states of one item's execution.
type ItemStatus string

const (
	ItemStatusPending ItemStatus = "pending"
	ItemStatusRunning ItemStatus = "running"
	ItemStatusSuccess ItemStatus = "success"
	ItemStatusError   ItemStatus = "error"
)

// Item is one dispatcher output. JSON carries either the decoded gateway
// response or, in continue-on-fail mode, a structured error record.
// PairedItem links output item i back to input item i.
type Item struct {
	JSON       map[string]any `json:"json"`
	PairedItem int            `json:"paired_item"`
	Status     ItemStatus     `json:"status"`
}

// APIInfo is attached to some responses for traceability. It has no
// bearing on correctness.
type APIInfo struct {
	Endpoint      string `json:"endpoint"`
	Documentation string `json:"documentation"`
	Timestamp     string `json:"timestamp"`
}
