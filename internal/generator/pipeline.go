package generator

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// step names one entity collection, the dependency group it is generated in,
// and the collections its foreign references resolve against.
type step struct {
	name  string
	group int
	deps  []string
}

// generationSteps is the static dependency table the pipeline is planned
// from. Every dependency must sit in a strictly earlier group; Plan verifies
// this against a topological layering of the table.
var generationSteps = []step{
	{name: "component_kind", group: 0},
	{name: "service", group: 0},
	{name: "position", group: 0},
	{name: "manufacturer", group: 0},
	{name: "person", group: 0},
	{name: "supplier", group: 0},
	{name: "labor_contract", group: 1, deps: []string{"person"}},
	{name: "phone_model", group: 1, deps: []string{"manufacturer"}},
	{name: "staff", group: 2, deps: []string{"labor_contract", "position"}},
	{name: "component", group: 2, deps: []string{"manufacturer", "component_kind", "phone_model"}},
	{name: "phone", group: 2, deps: []string{"person", "phone_model"}},
	{name: "account", group: 3, deps: []string{"staff"}},
	{name: "supply_contract", group: 4, deps: []string{"supplier", "account"}},
	{name: "order", group: 4, deps: []string{"person", "account", "phone"}},
	{name: "supply", group: 5, deps: []string{"supply_contract", "account"}},
	{name: "warehouse", group: 5, deps: []string{"component", "supply_contract"}},
	{name: "service_phone_model", group: 5, deps: []string{"service", "phone_model"}},
	{name: "warehouse_supply", group: 6, deps: []string{"warehouse", "supply", "supply_contract"}},
	{name: "order_service", group: 6, deps: []string{"order", "phone", "service_phone_model"}},
	{name: "order_warehouse", group: 7, deps: []string{"order", "order_service", "phone", "component", "warehouse"}},
}

// planGeneration validates the dependency table and returns the steps in
// execution order. Kahn's algorithm layers the graph; a step's assigned
// group must be reachable no earlier than its layer and must sit strictly
// after every dependency's group.
func planGeneration() ([]step, error) {
	index := make(map[string]step, len(generationSteps))
	for _, s := range generationSteps {
		if _, dup := index[s.name]; dup {
			return nil, fmt.Errorf("plan: duplicate step %q", s.name)
		}
		index[s.name] = s
	}

	layer := make(map[string]int, len(generationSteps))
	remaining := make(map[string][]string, len(generationSteps))
	for _, s := range generationSteps {
		for _, dep := range s.deps {
			if _, ok := index[dep]; !ok {
				return nil, fmt.Errorf("plan: step %q depends on unknown %q", s.name, dep)
			}
		}
		remaining[s.name] = s.deps
	}
	for depth := 0; len(remaining) > 0; depth++ {
		var ready []string
		for name, deps := range remaining {
			settled := true
			for _, dep := range deps {
				if _, done := layer[dep]; !done {
					settled = false
					break
				}
			}
			if settled {
				ready = append(ready, name)
			}
		}
		if len(ready) == 0 {
			return nil, fmt.Errorf("plan: dependency cycle among %d steps", len(remaining))
		}
		for _, name := range ready {
			layer[name] = depth
			delete(remaining, name)
		}
	}

	for _, s := range generationSteps {
		if s.group < layer[s.name] {
			return nil, fmt.Errorf("plan: step %q in group %d before its layer %d", s.name, s.group, layer[s.name])
		}
		for _, dep := range s.deps {
			if index[dep].group >= s.group {
				return nil, fmt.Errorf("plan: step %q in group %d does not precede dependent %q in group %d",
					dep, index[dep].group, s.name, s.group)
			}
		}
	}

	plan := make([]step, len(generationSteps))
	copy(plan, generationSteps)
	sort.SliceStable(plan, func(i, j int) bool { return plan[i].group < plan[j].group })
	return plan, nil
}

// Generate runs the full pipeline and returns a referentially closed
// dataset. Steps run sequentially in dependency order; the context is
// checked between steps.
func (g *Generator) Generate(ctx context.Context) (*Dataset, error) {
	plan, err := planGeneration()
	if err != nil {
		return nil, err
	}
	dataset := &Dataset{}
	started := time.Now()
	for _, s := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stepStart := time.Now()
		count, err := g.runStep(s.name, dataset)
		g.metrics.RecordDuration("generate_"+s.name, time.Since(stepStart))
		if err != nil {
			g.metrics.RecordResult("generate_"+s.name, "error")
			g.log.Error("generation step failed", "entity", s.name, "group", s.group, "error", err)
			return nil, fmt.Errorf("generate %s: %w", s.name, err)
		}
		g.metrics.RecordResult("generate_"+s.name, "ok")
		g.log.Debug("generated collection", "entity", s.name, "group", s.group, "records", count)
	}
	g.log.Info("dataset generated", "records", dataset.TotalRecords(), "elapsed", time.Since(started))
	return dataset, nil
}

func (g *Generator) runStep(name string, d *Dataset) (int, error) {
	var err error
	switch name {
	case "component_kind":
		d.ComponentKinds, err = g.ComponentKinds()
		return len(d.ComponentKinds), err
	case "service":
		d.Services, err = g.Services()
		return len(d.Services), err
	case "position":
		d.Positions, err = g.Positions()
		return len(d.Positions), err
	case "manufacturer":
		d.Manufacturers, err = g.Manufacturers()
		return len(d.Manufacturers), err
	case "person":
		d.Persons, err = g.Persons()
		return len(d.Persons), err
	case "supplier":
		d.Suppliers, err = g.Suppliers()
		return len(d.Suppliers), err
	case "labor_contract":
		d.LaborContracts, err = g.LaborContracts(d.Persons)
		return len(d.LaborContracts), err
	case "phone_model":
		d.PhoneModels, err = g.PhoneModels(d.Manufacturers)
		return len(d.PhoneModels), err
	case "staff":
		d.Staff, err = g.StaffMembers(d.LaborContracts, d.Positions)
		return len(d.Staff), err
	case "component":
		d.Components, err = g.Components(d.Manufacturers, d.ComponentKinds, d.PhoneModels)
		return len(d.Components), err
	case "phone":
		d.Phones, err = g.Phones(d.Persons, d.PhoneModels)
		return len(d.Phones), err
	case "account":
		d.Accounts, err = g.Accounts(d.Staff)
		return len(d.Accounts), err
	case "supply_contract":
		d.SupplyContracts, err = g.SupplyContracts(d.Suppliers, d.Accounts)
		return len(d.SupplyContracts), err
	case "order":
		d.Orders, err = g.Orders(d.Persons, d.Accounts, d.Phones)
		return len(d.Orders), err
	case "supply":
		d.Supplies, err = g.Supplies(d.SupplyContracts, d.Accounts)
		return len(d.Supplies), err
	case "warehouse":
		d.Warehouse, err = g.Warehouse(d.Components, d.SupplyContracts)
		return len(d.Warehouse), err
	case "service_phone_model":
		d.ServicePhoneModels, err = g.ServicePhoneModels(d.Services, d.PhoneModels)
		return len(d.ServicePhoneModels), err
	case "warehouse_supply":
		d.WarehouseSupplies, err = g.WarehouseSupplies(d.Warehouse, d.Supplies, d.SupplyContracts)
		return len(d.WarehouseSupplies), err
	case "order_service":
		d.OrderServices, err = g.OrderServices(d.Orders, d.Phones, d.ServicePhoneModels)
		return len(d.OrderServices), err
	case "order_warehouse":
		d.OrderWarehouses, err = g.OrderWarehouses(d.Orders, d.OrderServices, d.Phones, d.Components, d.Warehouse)
		return len(d.OrderWarehouses), err
	default:
		return 0, fmt.Errorf("unknown generation step %q", name)
	}
}
