package domain

import "time"

// ContractStatus tracks the lifecycle of labor and supply contracts.
type ContractStatus string

// Canonical contract statuses shared by labor and supply contracts.
const (
	ContractReview      ContractStatus = "Review"
	ContractNegotiation ContractStatus = "Negotiation"
	ContractActive      ContractStatus = "Active"
	ContractExpired     ContractStatus = "Expired"
	ContractVoid        ContractStatus = "Void"
	ContractRejected    ContractStatus = "Rejected"
)

// ContractStatuses lists every contract status in weight-array order.
var ContractStatuses = []ContractStatus{
	ContractReview,
	ContractNegotiation,
	ContractActive,
	ContractExpired,
	ContractVoid,
	ContractRejected,
}

// Finalized reports whether a labor contract with this status carries a
// signed timestamp. Review and Negotiation contracts are still unsigned.
func (s ContractStatus) Finalized() bool {
	switch s {
	case ContractActive, ContractExpired, ContractVoid, ContractRejected:
		return true
	default:
		return false
	}
}

// SignedSupplyContract reports whether a supply contract with this status
// carries a signed timestamp. Unlike labor contracts, a rejected supply
// contract was never signed.
func (s ContractStatus) SignedSupplyContract() bool {
	switch s {
	case ContractActive, ContractExpired, ContractVoid:
		return true
	default:
		return false
	}
}

// StaffStatus enumerates employment states derived from labor contracts.
type StaffStatus string

const (
	StaffWorking    StaffStatus = "Working"
	StaffOnVacation StaffStatus = "OnVacation"
	StaffSuspended  StaffStatus = "Suspended"
	StaffFired      StaffStatus = "Fired"
)

// AccountRole enumerates the access roles a staff account may hold.
type AccountRole string

const (
	RoleAdmin           AccountRole = "Admin"
	RoleManager         AccountRole = "Manager"
	RoleHR              AccountRole = "HR"
	RoleAccountant      AccountRole = "Accountant"
	RoleServiceman      AccountRole = "Serviceman"
	RoleShopman         AccountRole = "Shopman"
	RoleWarehouseWorker AccountRole = "WarehouseWorker"
)

// AccountStatus enumerates account validity states.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountExpired  AccountStatus = "Expired"
	AccountInactive AccountStatus = "Inactive"
)

// AccountStatuses lists account statuses in weight-array order.
var AccountStatuses = []AccountStatus{AccountActive, AccountExpired, AccountInactive}

// SupplyStatus tracks a single supply shipment from negotiation to delivery.
type SupplyStatus string

const (
	SupplyReview      SupplyStatus = "Review"
	SupplyNegotiation SupplyStatus = "Negotiation"
	SupplySigned      SupplyStatus = "Signed"
	SupplyPaid        SupplyStatus = "Paid"
	SupplyDispatched  SupplyStatus = "Dispatched"
	SupplyDelivered   SupplyStatus = "Delivered"
	SupplyFailed      SupplyStatus = "Failed"
	SupplyRejected    SupplyStatus = "Rejected"
)

// Signed reports whether a supply with this status carries a signed
// timestamp.
func (s SupplyStatus) Signed() bool {
	switch s {
	case SupplySigned, SupplyPaid, SupplyDispatched, SupplyDelivered, SupplyFailed:
		return true
	default:
		return false
	}
}

// OpenSupplyStatuses are the states a contract's most recent supply may hold;
// ClosedSupplyStatuses are the terminal states assigned to earlier supplies.
var (
	OpenSupplyStatuses   = []SupplyStatus{SupplyReview, SupplyNegotiation, SupplySigned, SupplyPaid, SupplyDispatched}
	ClosedSupplyStatuses = []SupplyStatus{SupplyDelivered, SupplyFailed, SupplyRejected}
)

// OrderStatus enumerates repair order workflow states.
type OrderStatus string

const (
	OrderProcessing     OrderStatus = "Processing"
	OrderPendingPayment OrderStatus = "PendingPayment"
	OrderActive         OrderStatus = "Active"
	OrderComplete       OrderStatus = "Complete"
	OrderRejected       OrderStatus = "Rejected"
)

// OrderStatuses lists every order status for uniform sampling.
var OrderStatuses = []OrderStatus{
	OrderProcessing,
	OrderPendingPayment,
	OrderActive,
	OrderComplete,
	OrderRejected,
}

// Color is a phone shell color.
type Color string

// Phone shell color palette.
const (
	ColorBlack       Color = "Black"
	ColorDarkGray    Color = "DarkGray"
	ColorGray        Color = "Gray"
	ColorLightGray   Color = "LightGray"
	ColorWhite       Color = "White"
	ColorBrown       Color = "Brown"
	ColorDarkRed     Color = "DarkRed"
	ColorRed         Color = "Red"
	ColorLightRed    Color = "LightRed"
	ColorYellow      Color = "Yellow"
	ColorLightYellow Color = "LightYellow"
	ColorKhaki       Color = "Khaki"
	ColorDarkGreen   Color = "DarkGreen"
	ColorGreen       Color = "Green"
	ColorDarkBlue    Color = "DarkBlue"
	ColorBlue        Color = "Blue"
)

// Colors lists the full palette for uniform sampling.
var Colors = []Color{
	ColorBlack, ColorDarkGray, ColorGray, ColorLightGray, ColorWhite,
	ColorBrown, ColorDarkRed, ColorRed, ColorLightRed, ColorYellow,
	ColorLightYellow, ColorKhaki, ColorDarkGreen, ColorGreen, ColorDarkBlue,
	ColorBlue,
}

// MetaTime is the lifecycle metadata pair stamped on entities at creation.
type MetaTime struct {
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// MetaAt returns a MetaTime with both stamps set to t.
func MetaAt(t time.Time) MetaTime {
	return MetaTime{Created: t, Updated: t}
}
