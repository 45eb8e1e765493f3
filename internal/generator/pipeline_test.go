package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"repaircore/pkg/domain"
)

// pipelineConfig sizes the run so that every account role is present with
// overwhelming probability under the fixed seed.
func pipelineConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.PersonCount = 200
	cfg.LaborContractCount = 150
	cfg.SupplierCount = 30
	return cfg
}

func TestPlanLayersMatchDependencyGroups(t *testing.T) {
	plan, err := planGeneration()
	if err != nil {
		t.Fatalf("planGeneration: %v", err)
	}
	if len(plan) != len(generationSteps) {
		t.Fatalf("plan has %d steps, want %d", len(plan), len(generationSteps))
	}
	group := make(map[string]int, len(plan))
	last := 0
	for _, s := range plan {
		if s.group < last {
			t.Fatalf("step %s in group %d scheduled after group %d", s.name, s.group, last)
		}
		last = s.group
		group[s.name] = s.group
	}
	for _, s := range plan {
		for _, dep := range s.deps {
			if group[dep] >= s.group {
				t.Errorf("step %s (group %d) depends on %s (group %d)", s.name, s.group, dep, group[dep])
			}
		}
	}
}

func TestDatasetGroupsMatchCollections(t *testing.T) {
	var dataset Dataset
	groups := dataset.Groups()
	if len(groups) != 8 {
		t.Fatalf("got %d groups, want 8", len(groups))
	}
	total := 0
	for i, bucket := range groups {
		for _, c := range bucket {
			if c.Group != i {
				t.Errorf("collection %s with group %d bucketed at %d", c.Name, c.Group, i)
			}
			total++
		}
	}
	if want := len(dataset.Collections()); total != want {
		t.Fatalf("groups hold %d collections, want %d", total, want)
	}
}

func TestGenerateProducesReferentiallyClosedDataset(t *testing.T) {
	g := mustGenerator(t, pipelineConfig(), WithPasswordHasher(plainHasher{}))
	dataset, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, c := range dataset.Collections() {
		if len(c.Records) == 0 {
			t.Errorf("collection %s is empty", c.Name)
		}
	}

	persons := idSet(dataset.Persons, func(p domain.Person) uuid.UUID { return p.ID })
	suppliers := idSet(dataset.Suppliers, func(s domain.Supplier) uuid.UUID { return s.ID })
	manufacturers := idSet(dataset.Manufacturers, func(m domain.Manufacturer) uuid.UUID { return m.ID })
	positions := idSet(dataset.Positions, func(p domain.Position) uuid.UUID { return p.ID })
	services := idSet(dataset.Services, func(s domain.Service) uuid.UUID { return s.ID })
	kinds := idSet(dataset.ComponentKinds, func(k domain.ComponentKind) uuid.UUID { return k.ID })
	contracts := idSet(dataset.LaborContracts, func(c domain.LaborContract) uuid.UUID { return c.ID })
	models := idSet(dataset.PhoneModels, func(m domain.PhoneModel) uuid.UUID { return m.ID })
	staff := idSet(dataset.Staff, func(s domain.Staff) uuid.UUID { return s.ID })
	components := idSet(dataset.Components, func(c domain.Component) uuid.UUID { return c.ID })
	phones := idSet(dataset.Phones, func(p domain.Phone) uuid.UUID { return p.ID })
	supplyContracts := idSet(dataset.SupplyContracts, func(c domain.SupplyContract) uuid.UUID { return c.ID })
	orders := idSet(dataset.Orders, func(o domain.Order) uuid.UUID { return o.ID })
	supplies := idSet(dataset.Supplies, func(s domain.Supply) uuid.UUID { return s.ID })
	warehouse := idSet(dataset.Warehouse, func(w domain.Warehouse) uuid.UUID { return w.ID })

	for _, c := range dataset.LaborContracts {
		requireRef(t, "labor_contract.person", c.Person, persons)
	}
	for _, m := range dataset.PhoneModels {
		requireRef(t, "phone_model.manufacturer", m.Manufacturer, manufacturers)
	}
	for _, s := range dataset.Staff {
		requireRef(t, "staff.contract", s.Contract, contracts)
		requireRef(t, "staff.position", s.Position, positions)
	}
	for _, c := range dataset.Components {
		requireRef(t, "component.kind", c.Kind, kinds)
		requireRef(t, "component.phone_model", c.PhoneModel, models)
		requireRef(t, "component.manufacturer", c.Manufacturer, manufacturers)
	}
	for _, p := range dataset.Phones {
		requireRef(t, "phone.person", p.Person, persons)
		requireRef(t, "phone.model", p.Model, models)
	}
	for _, a := range dataset.Accounts {
		requireRef(t, "account.staff", a.Staff, staff)
	}
	for _, c := range dataset.SupplyContracts {
		requireRef(t, "supply_contract.supplier", c.Supplier, suppliers)
		requireRef(t, "supply_contract.manager", c.Manager, staff)
	}
	for _, o := range dataset.Orders {
		requireRef(t, "order.client", o.Client, persons)
		requireRef(t, "order.phone", o.Phone, phones)
		requireRef(t, "order.serviceman", o.Serviceman, staff)
		requireRef(t, "order.shopman", o.Shopman, staff)
	}
	for _, s := range dataset.Supplies {
		requireRef(t, "supply.contract", s.Contract, supplyContracts)
		requireRef(t, "supply.staff", s.Staff, staff)
	}
	for _, w := range dataset.Warehouse {
		requireRef(t, "warehouse.component", w.Component, components)
		requireRef(t, "warehouse.supplier", w.Supplier, suppliers)
	}
	for _, spm := range dataset.ServicePhoneModels {
		requireRef(t, "service_phone_model.service", spm.Service, services)
		requireRef(t, "service_phone_model.phone_model", spm.PhoneModel, models)
	}
	for _, ws := range dataset.WarehouseSupplies {
		requireRef(t, "warehouse_supply.item", ws.Item, warehouse)
		requireRef(t, "warehouse_supply.supply", ws.Supply, supplies)
	}
	for _, os := range dataset.OrderServices {
		requireRef(t, "order_service.order", os.Order, orders)
		requireRef(t, "order_service.service", os.Service, services)
	}
	for _, ow := range dataset.OrderWarehouses {
		requireRef(t, "order_warehouse.order", ow.Order, orders)
		requireRef(t, "order_warehouse.item", ow.Item, warehouse)
	}

	if len(dataset.LaborContracts) != 150 {
		t.Errorf("got %d labor contracts, want 150", len(dataset.LaborContracts))
	}
	if len(dataset.Persons) != 200 {
		t.Errorf("got %d persons, want 200", len(dataset.Persons))
	}
	if len(dataset.Accounts) != len(dataset.Staff) {
		t.Errorf("accounts (%d) and staff (%d) diverge", len(dataset.Accounts), len(dataset.Staff))
	}
	if len(dataset.OrderServices) != len(dataset.Orders) {
		t.Errorf("order services (%d) and orders (%d) diverge", len(dataset.OrderServices), len(dataset.Orders))
	}
	if len(dataset.Phones) < len(dataset.Persons) {
		t.Errorf("phones (%d) fewer than persons (%d); every person owns at least one", len(dataset.Phones), len(dataset.Persons))
	}
}

func TestGenerateStatusSignedCoupling(t *testing.T) {
	g := mustGenerator(t, pipelineConfig(), WithPasswordHasher(plainHasher{}))
	dataset, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, c := range dataset.LaborContracts {
		if c.Status.Finalized() != (c.Signed != nil) {
			t.Errorf("labor contract %s: status %s, signed=%v", c.ID, c.Status, c.Signed)
		}
	}
	for _, c := range dataset.SupplyContracts {
		if c.Status.SignedSupplyContract() != (c.Signed != nil) {
			t.Errorf("supply contract %s: status %s, signed=%v", c.ID, c.Status, c.Signed)
		}
	}
	for _, s := range dataset.Supplies {
		if s.Status.Signed() != (s.Signed != nil) {
			t.Errorf("supply %s: status %s, signed=%v", s.ID, s.Status, s.Signed)
		}
	}
}

func TestGenerateIsStructurallyDeterministic(t *testing.T) {
	cfg := pipelineConfig()
	first, err := mustGenerator(t, cfg, WithPasswordHasher(plainHasher{})).Generate(context.Background())
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := mustGenerator(t, cfg, WithPasswordHasher(plainHasher{})).Generate(context.Background())
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	a, b := first.Collections(), second.Collections()
	for i := range a {
		if len(a[i].Records) != len(b[i].Records) {
			t.Errorf("collection %s: %d vs %d records for the same seed", a[i].Name, len(a[i].Records), len(b[i].Records))
		}
	}
}

func TestGenerateHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGenerator(t, pipelineConfig())
	if _, err := g.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestGenerateFailsWhenContractsExceedPersons(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.PersonCount = 10
	cfg.LaborContractCount = 11
	g := mustGenerator(t, cfg)
	_, err := g.Generate(context.Background())
	var want ErrInsufficientPersons
	if !errors.As(err, &want) {
		t.Fatalf("got %v, want ErrInsufficientPersons", err)
	}
}

func idSet[T any](values []T, id func(T) uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(values))
	for _, v := range values {
		set[id(v)] = true
	}
	return set
}

func requireRef(t *testing.T, field string, id uuid.UUID, set map[uuid.UUID]bool) {
	t.Helper()
	if !set[id] {
		t.Errorf("%s references unknown id %s", field, id)
	}
}
