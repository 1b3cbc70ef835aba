package constant

type EventType string

const (
	EventRequestApproved   EventType = "request_approved"
	EventTransferCompleted EventType = "transfer_completed"
	EventSaleRecorded      EventType = "sale_recorded"
	EventLowStock          EventType = "low_stock"
)
