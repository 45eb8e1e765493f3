package generator

import (
	"repaircore/pkg/domain"
)

// Dataset is one fully generated, referentially closed instance of the
// schema. Field order matches the canonical snapshot order: every collection
// appears after the collections it references.
type Dataset struct {
	ComponentKinds     []domain.ComponentKind     `json:"component_kind"`
	Services           []domain.Service           `json:"service"`
	Positions          []domain.Position          `json:"position"`
	Manufacturers      []domain.Manufacturer      `json:"manufacturer"`
	Persons            []domain.Person            `json:"person"`
	Suppliers          []domain.Supplier          `json:"supplier"`
	LaborContracts     []domain.LaborContract     `json:"labor_contract"`
	PhoneModels        []domain.PhoneModel        `json:"phone_model"`
	Staff              []domain.Staff             `json:"staff"`
	Components         []domain.Component         `json:"component"`
	Phones             []domain.Phone             `json:"phone"`
	Accounts           []domain.Account           `json:"account"`
	SupplyContracts    []domain.SupplyContract    `json:"supply_contract"`
	Orders             []domain.Order             `json:"order"`
	Supplies           []domain.Supply            `json:"supply"`
	Warehouse          []domain.Warehouse         `json:"warehouse"`
	ServicePhoneModels []domain.ServicePhoneModel `json:"service_phone_model"`
	WarehouseSupplies  []domain.WarehouseSupply   `json:"warehouse_supply"`
	OrderServices      []domain.OrderService      `json:"order_service"`
	OrderWarehouses    []domain.OrderWarehouse    `json:"order_warehouse"`
}

// Collection is one named entity slice of a dataset together with its
// dependency group. Collections in the same group reference only strictly
// earlier groups, so they can be written concurrently.
type Collection struct {
	Name    string
	Group   int
	Records []domain.Record
}

func records[T domain.Record](values []T) []domain.Record {
	out := make([]domain.Record, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Collections returns every entity slice in canonical snapshot order,
// annotated with its dependency group.
func (d *Dataset) Collections() []Collection {
	return []Collection{
		{Name: "component_kind", Group: 0, Records: records(d.ComponentKinds)},
		{Name: "service", Group: 0, Records: records(d.Services)},
		{Name: "position", Group: 0, Records: records(d.Positions)},
		{Name: "manufacturer", Group: 0, Records: records(d.Manufacturers)},
		{Name: "person", Group: 0, Records: records(d.Persons)},
		{Name: "supplier", Group: 0, Records: records(d.Suppliers)},
		{Name: "labor_contract", Group: 1, Records: records(d.LaborContracts)},
		{Name: "phone_model", Group: 1, Records: records(d.PhoneModels)},
		{Name: "staff", Group: 2, Records: records(d.Staff)},
		{Name: "component", Group: 2, Records: records(d.Components)},
		{Name: "phone", Group: 2, Records: records(d.Phones)},
		{Name: "account", Group: 3, Records: records(d.Accounts)},
		{Name: "supply_contract", Group: 4, Records: records(d.SupplyContracts)},
		{Name: "order", Group: 4, Records: records(d.Orders)},
		{Name: "supply", Group: 5, Records: records(d.Supplies)},
		{Name: "warehouse", Group: 5, Records: records(d.Warehouse)},
		{Name: "service_phone_model", Group: 5, Records: records(d.ServicePhoneModels)},
		{Name: "warehouse_supply", Group: 6, Records: records(d.WarehouseSupplies)},
		{Name: "order_service", Group: 6, Records: records(d.OrderServices)},
		{Name: "order_warehouse", Group: 7, Records: records(d.OrderWarehouses)},
	}
}

// Groups buckets the collections by dependency group, ascending. Every
// record in bucket i references only records in buckets before i.
func (d *Dataset) Groups() [][]Collection {
	var groups [][]Collection
	for _, c := range d.Collections() {
		for len(groups) <= c.Group {
			groups = append(groups, nil)
		}
		groups[c.Group] = append(groups[c.Group], c)
	}
	return groups
}

// TotalRecords returns the record count across all collections.
func (d *Dataset) TotalRecords() int {
	total := 0
	for _, c := range d.Collections() {
		total += len(c.Records)
	}
	return total
}
