package constant

type RequestStatus int

const (
	RequestStatusPending   RequestStatus = 1
	RequestStatusApproved  RequestStatus = 2
	RequestStatusRejected  RequestStatus = 3
	RequestStatusCompleted RequestStatus = 4
)

type TransferStatus int

const (
	TransferStatusPending   TransferStatus = 1
	TransferStatusInTransit TransferStatus = 2
	TransferStatusCompleted TransferStatus = 3
)

type SaleStatus int

const (
	SaleStatusCompleted SaleStatus = 1
	SaleStatusRefunded  SaleStatus = 2
)

type LocationType int

const (
	LocationTypeWarehouse LocationType = 1
	LocationTypeStore     LocationType = 2
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodMobile = "mobile"
)

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

type ContextKey string

const (
	UserIDKey     ContextKey = "user_id"
	RoleKey       ContextKey = "role"
	LocationIDKey ContextKey = "location_id"
)
