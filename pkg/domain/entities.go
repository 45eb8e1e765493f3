// Package domain defines the persistent entities, status enums, and value
// types of the repair-shop schema.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is implemented by every entity that can be written to a record
// store. Table returns the storage table name.
type Record interface {
	Table() string
}

// Person is a customer or employee-to-be known to the shop.
type Person struct {
	ID         uuid.UUID `json:"uuid"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Meta       MetaTime  `json:"meta"`
}

func (Person) Table() string { return "Person" }

// Supplier is an external company that component stock is sourced from.
// The IBAN is generated without a valid checksum.
type Supplier struct {
	ID      uuid.UUID `json:"uuid"`
	Name    string    `json:"name"`
	IBAN    string    `json:"iban"`
	SWIFT   string    `json:"swift"`
	Address string    `json:"address"`
	Country string    `json:"country"`
}

func (Supplier) Table() string { return "Supplier" }

// Manufacturer produces phone models and components.
type Manufacturer struct {
	ID      uuid.UUID `json:"uuid"`
	Name    string    `json:"name"`
	Country string    `json:"country"`
}

func (Manufacturer) Table() string { return "Manufacturer" }

// Position is a staff job title with a base salary.
type Position struct {
	ID      uuid.UUID       `json:"uuid"`
	Name    string          `json:"name"`
	Details *string         `json:"details"`
	Salary  decimal.Decimal `json:"salary"`
	Meta    MetaTime        `json:"meta"`
}

func (Position) Table() string { return "Position" }

// Service is a repair service the shop offers.
type Service struct {
	ID          uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Meta        MetaTime  `json:"meta"`
}

func (Service) Table() string { return "Service" }

// ComponentKind is a category of phone component (battery, display, ...).
type ComponentKind struct {
	ID      uuid.UUID `json:"uuid"`
	Name    string    `json:"name"`
	Details *string   `json:"details"`
}

func (ComponentKind) Table() string { return "ComponentKind" }

// LaborContract binds a person to the shop as staff. Signed is set only for
// finalized statuses.
type LaborContract struct {
	ID       uuid.UUID      `json:"uuid"`
	Person   uuid.UUID      `json:"person"`
	Passport string         `json:"passport"`
	Status   ContractStatus `json:"status"`
	Signed   *time.Time     `json:"signed"`
	Meta     MetaTime       `json:"meta"`
}

func (LaborContract) Table() string { return "LaborContract" }

// PhoneModel is a model produced by a manufacturer.
type PhoneModel struct {
	ID           uuid.UUID `json:"uuid"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Manufacturer uuid.UUID `json:"manufacturer"`
}

func (PhoneModel) Table() string { return "PhoneModel" }

// Staff is an employment record derived from a finalized labor contract.
type Staff struct {
	ID       uuid.UUID   `json:"uuid"`
	Contract uuid.UUID   `json:"contract"`
	Position uuid.UUID   `json:"position"`
	Status   StaffStatus `json:"status"`
}

func (Staff) Table() string { return "Staff" }

// Component is a concrete replacement part for one phone model.
type Component struct {
	ID           uuid.UUID `json:"uuid"`
	Name         string    `json:"name"`
	Kind         uuid.UUID `json:"kind"`
	PhoneModel   uuid.UUID `json:"phone_model"`
	Manufacturer uuid.UUID `json:"manufacturer"`
}

func (Component) Table() string { return "Component" }

// Phone is a device owned by a person.
type Phone struct {
	ID        uuid.UUID `json:"uuid"`
	Person    uuid.UUID `json:"person"`
	IMEI      string    `json:"imei"`
	Wifi      string    `json:"wifi"`
	Bluetooth string    `json:"bluetooth"`
	Model     uuid.UUID `json:"model"`
	Color     Color     `json:"color"`
	Meta      MetaTime  `json:"meta"`
}

func (Phone) Table() string { return "Phone" }

// Account is the login identity of one staff member.
type Account struct {
	ID       uuid.UUID     `json:"uuid"`
	Staff    uuid.UUID     `json:"staff"`
	Login    string        `json:"login"`
	Password string        `json:"password"`
	Role     AccountRole   `json:"role"`
	Status   AccountStatus `json:"status"`
	Meta     MetaTime      `json:"meta"`
}

func (Account) Table() string { return "Account" }

// SupplyContract is a framework agreement with a supplier, negotiated by a
// manager. Signed is set only for statuses that reached signature.
type SupplyContract struct {
	ID       uuid.UUID      `json:"uuid"`
	Supplier uuid.UUID      `json:"supplier"`
	Manager  uuid.UUID      `json:"manager"`
	Status   ContractStatus `json:"status"`
	Signed   *time.Time     `json:"signed"`
	Meta     MetaTime       `json:"meta"`
}

func (SupplyContract) Table() string { return "SupplyContract" }

// Order is a repair order for one phone, handled by a serviceman and a
// shopman.
type Order struct {
	ID         uuid.UUID   `json:"uuid"`
	Client     uuid.UUID   `json:"client"`
	Phone      uuid.UUID   `json:"phone"`
	Serviceman uuid.UUID   `json:"serviceman"`
	Shopman    uuid.UUID   `json:"shopman"`
	Status     OrderStatus `json:"status"`
	Meta       MetaTime    `json:"meta"`
}

func (Order) Table() string { return "Order" }

// Supply is a single shipment under a supply contract, accepted by a
// warehouse worker.
type Supply struct {
	ID       uuid.UUID    `json:"uuid"`
	Contract uuid.UUID    `json:"contract"`
	Staff    uuid.UUID    `json:"staff"`
	Status   SupplyStatus `json:"status"`
	Signed   *time.Time   `json:"signed"`
	Meta     MetaTime     `json:"meta"`
}

func (Supply) Table() string { return "Supply" }

// Warehouse is a stocked component position sourced from one supplier.
type Warehouse struct {
	ID        uuid.UUID       `json:"uuid"`
	Component uuid.UUID       `json:"component"`
	Supplier  uuid.UUID       `json:"supplier"`
	Price     decimal.Decimal `json:"price"`
	Amount    int32           `json:"amount"`
	Meta      MetaTime        `json:"meta"`
}

func (Warehouse) Table() string { return "Warehouse" }

// ServicePhoneModel is the recommended price of a service for one phone
// model.
type ServicePhoneModel struct {
	Service    uuid.UUID       `json:"service"`
	PhoneModel uuid.UUID       `json:"phone_model"`
	Price      decimal.Decimal `json:"price"`
	Meta       MetaTime        `json:"meta"`
}

func (ServicePhoneModel) Table() string { return "ServicePhoneModel" }

// WarehouseSupply links a warehouse item to the supply that delivered it.
type WarehouseSupply struct {
	Item    uuid.UUID `json:"item"`
	Supply  uuid.UUID `json:"supply"`
	Amount  int32     `json:"amount"`
	Created time.Time `json:"created"`
}

func (WarehouseSupply) Table() string { return "WarehouseSupply" }

// OrderService records the service sold on an order at its agreed price.
type OrderService struct {
	Order   uuid.UUID       `json:"order"`
	Service uuid.UUID       `json:"service"`
	Price   decimal.Decimal `json:"price"`
}

func (OrderService) Table() string { return "OrderService" }

// OrderWarehouse records the warehouse item consumed by an order.
type OrderWarehouse struct {
	Order  uuid.UUID       `json:"order"`
	Item   uuid.UUID       `json:"item"`
	Amount int32           `json:"amount"`
	Price  decimal.Decimal `json:"price"`
}

func (OrderWarehouse) Table() string { return "OrderWarehouse" }
