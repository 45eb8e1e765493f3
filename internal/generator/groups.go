package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"repaircore/pkg/domain"
)

var supplierCountries = []string{"US", "CN", "TW"}

// Persons fakes the customer/employee pool.
func (g *Generator) Persons() ([]domain.Person, error) {
	store := make([]domain.Person, 0, g.cfg.PersonCount)
	for i := 0; i < g.cfg.PersonCount; i++ {
		store = append(store, domain.Person{
			ID:        uuid.New(),
			FirstName: g.faker.FirstName(),
			LastName:  g.faker.LastName(),
			Email:     g.faker.Email(),
			Phone:     g.faker.Phone(),
			Meta:      g.meta(),
		})
	}
	return store, nil
}

// Suppliers fakes supplier companies. The IBAN is deliberately generated
// without a valid checksum so the data cannot be mistaken for a real account.
func (g *Generator) Suppliers() ([]domain.Supplier, error) {
	store := make([]domain.Supplier, 0, g.cfg.SupplierCount)
	for i := 0; i < g.cfg.SupplierCount; i++ {
		country := pick(g.rng, supplierCountries)
		store = append(store, domain.Supplier{
			ID:      uuid.New(),
			Name:    g.faker.Company(),
			IBAN:    country + g.faker.DigitN(30),
			SWIFT:   strings.ToUpper(g.faker.LetterN(4)) + country + strings.ToUpper(g.faker.LetterN(2)),
			Address: fmt.Sprintf("%s %s %s, %s, %s", country, g.faker.Zip(), g.faker.StateAbr(), g.faker.City(), g.faker.Street()),
			Country: country,
		})
	}
	return store, nil
}

// Manufacturers materializes one record per catalog entry.
func (g *Generator) Manufacturers() ([]domain.Manufacturer, error) {
	store := make([]domain.Manufacturer, 0, len(ManufacturerSamples))
	for _, sample := range ManufacturerSamples {
		store = append(store, domain.Manufacturer{
			ID:      uuid.New(),
			Name:    sample.Name,
			Country: sample.Country,
		})
	}
	return store, nil
}

// Positions materializes the staffing catalog with salaries jittered inside
// the configured scatter band, and records each position's implied account
// role.
func (g *Generator) Positions() ([]domain.Position, error) {
	store := make([]domain.Position, 0, len(PositionSamples))
	for _, sample := range PositionSamples {
		id := uuid.New()
		g.roleByPosition[id] = sample.Role
		store = append(store, domain.Position{
			ID:     id,
			Name:   sample.Name,
			Salary: decimal.NewFromFloat(jitter(g.rng, sample.Salary, g.cfg.PositionSalaryScatter)).Round(2),
			Meta:   g.meta(),
		})
	}
	return store, nil
}

// ComponentKinds materializes the component category catalog and records the
// base price and name index consulted by later groups.
func (g *Generator) ComponentKinds() ([]domain.ComponentKind, error) {
	store := make([]domain.ComponentKind, 0, len(ComponentKindSamples))
	for _, sample := range ComponentKindSamples {
		id := uuid.New()
		g.priceByKind[id] = sample.Price
		g.kindIDByName[sample.Name] = id
		store = append(store, domain.ComponentKind{
			ID:      id,
			Name:    sample.Name,
			Details: optional(sample.Details),
		})
	}
	return store, nil
}

// Services materializes the service catalog, validating that every implied
// component kind resolves, and records base price and kind hints.
func (g *Generator) Services() ([]domain.Service, error) {
	known := make(map[string]bool, len(ComponentKindSamples))
	for _, kind := range ComponentKindSamples {
		known[kind.Name] = true
	}
	store := make([]domain.Service, 0, len(ServiceSamples))
	for _, sample := range ServiceSamples {
		if !known[sample.Kind] {
			return nil, ErrSampleLookup{Catalog: "component kind", Name: sample.Kind, For: sample.Name}
		}
		id := uuid.New()
		g.priceByService[id] = sample.Price
		g.kindNameByService[id] = sample.Kind
		store = append(store, domain.Service{
			ID:          id,
			Name:        sample.Name,
			Description: optional(sample.Description),
			Meta:        g.meta(),
		})
	}
	return store, nil
}

// LaborContracts assigns each contract a distinct person by shuffling the
// pool once and taking a prefix, so assignment is injective and O(n).
func (g *Generator) LaborContracts(persons []domain.Person) ([]domain.LaborContract, error) {
	if g.cfg.LaborContractCount > len(persons) {
		return nil, ErrInsufficientPersons{Persons: len(persons), Contracts: g.cfg.LaborContractCount}
	}
	hired := shuffled(g.rng, persons)[:g.cfg.LaborContractCount]
	store := make([]domain.LaborContract, 0, len(hired))
	for _, person := range hired {
		status := domain.ContractStatuses[g.contractWeights.Sample(g.rng)]
		contract := domain.LaborContract{
			ID:       uuid.New(),
			Person:   person.ID,
			Passport: g.faker.DigitN(10),
			Status:   status,
			Meta:     g.meta(),
		}
		if status.Finalized() {
			signed := g.now().UTC()
			contract.Signed = &signed
		}
		store = append(store, contract)
	}
	return store, nil
}

// PhoneModels materializes the model catalog, resolving each manufacturer by
// name and recording the model's price coefficient.
func (g *Generator) PhoneModels(manufacturers []domain.Manufacturer) ([]domain.PhoneModel, error) {
	byName := make(map[string]uuid.UUID, len(manufacturers))
	for _, m := range manufacturers {
		byName[m.Name] = m.ID
	}
	store := make([]domain.PhoneModel, 0, len(PhoneModelSamples))
	for _, sample := range PhoneModelSamples {
		maker, ok := byName[sample.Manufacturer]
		if !ok {
			return nil, ErrSampleLookup{Catalog: "manufacturer", Name: sample.Manufacturer, For: sample.Name}
		}
		id := uuid.New()
		g.coefByModel[id] = sample.Coefficient
		store = append(store, domain.PhoneModel{
			ID:           id,
			Name:         sample.Name,
			Description:  optional(sample.Description),
			Manufacturer: maker,
		})
	}
	return store, nil
}

// StaffMembers staffs every contract that reached a working state. The staff
// status is derived from the contract status; positions are drawn from the
// catalog's selection weights.
func (g *Generator) StaffMembers(contracts []domain.LaborContract, positions []domain.Position) ([]domain.Staff, error) {
	var store []domain.Staff
	for _, contract := range contracts {
		var status domain.StaffStatus
		switch contract.Status {
		case domain.ContractActive:
			if g.vacationChance.Sample(g.rng) {
				status = domain.StaffOnVacation
			} else {
				status = domain.StaffWorking
			}
		case domain.ContractExpired:
			status = domain.StaffSuspended
		case domain.ContractVoid:
			status = domain.StaffFired
		default:
			// Review, Negotiation, and Rejected contracts never staffed anyone.
			continue
		}
		store = append(store, domain.Staff{
			ID:       uuid.New(),
			Contract: contract.ID,
			Position: positions[g.positionWeights.Sample(g.rng)].ID,
			Status:   status,
		})
	}
	return store, nil
}

// Components materializes the replacement-part catalog, resolving kind,
// model, and manufacturer references by name.
func (g *Generator) Components(manufacturers []domain.Manufacturer, kinds []domain.ComponentKind, models []domain.PhoneModel) ([]domain.Component, error) {
	makerByName := make(map[string]uuid.UUID, len(manufacturers))
	for _, m := range manufacturers {
		makerByName[m.Name] = m.ID
	}
	kindByName := make(map[string]uuid.UUID, len(kinds))
	for _, k := range kinds {
		kindByName[k.Name] = k.ID
	}
	modelByName := make(map[string]uuid.UUID, len(models))
	for _, m := range models {
		modelByName[m.Name] = m.ID
	}
	store := make([]domain.Component, 0, len(ComponentSamples))
	for _, sample := range ComponentSamples {
		kind, ok := kindByName[sample.Kind]
		if !ok {
			return nil, ErrSampleLookup{Catalog: "component kind", Name: sample.Kind, For: sample.Name}
		}
		model, ok := modelByName[sample.PhoneModel]
		if !ok {
			return nil, ErrSampleLookup{Catalog: "phone model", Name: sample.PhoneModel, For: sample.Name}
		}
		maker, ok := makerByName[sample.Manufacturer]
		if !ok {
			return nil, ErrSampleLookup{Catalog: "manufacturer", Name: sample.Manufacturer, For: sample.Name}
		}
		store = append(store, domain.Component{
			ID:           uuid.New(),
			Name:         sample.Name,
			Kind:         kind,
			PhoneModel:   model,
			Manufacturer: maker,
		})
	}
	return store, nil
}

// Phones gives every person at least one phone, with extras drawn from the
// configured weight vector.
func (g *Generator) Phones(persons []domain.Person, models []domain.PhoneModel) ([]domain.Phone, error) {
	var store []domain.Phone
	for _, person := range persons {
		count := g.phoneWeights.Sample(g.rng) + 1
		for i := 0; i < count; i++ {
			store = append(store, domain.Phone{
				ID:        uuid.New(),
				Person:    person.ID,
				IMEI:      g.faker.DigitN(17),
				Wifi:      g.faker.MacAddress(),
				Bluetooth: g.faker.MacAddress(),
				Model:     pick(g.rng, models).ID,
				Color:     pick(g.rng, domain.Colors),
				Meta:      g.meta(),
			})
		}
	}
	return store, nil
}

// Accounts creates one login per staff member. The account role comes from
// the position's catalog hint; the password is a hash of a throwaway faked
// secret.
func (g *Generator) Accounts(staff []domain.Staff) ([]domain.Account, error) {
	store := make([]domain.Account, 0, len(staff))
	for _, member := range staff {
		role, ok := g.roleByPosition[member.Position]
		if !ok {
			return nil, fmt.Errorf("generator: position %s of staff %s has no role hint", member.Position, member.ID)
		}
		hash, err := g.hasher.Hash(g.faker.Password(true, true, true, false, false, 16))
		if err != nil {
			return nil, fmt.Errorf("hash account password: %w", err)
		}
		store = append(store, domain.Account{
			ID:       uuid.New(),
			Staff:    member.ID,
			Login:    g.faker.Username(),
			Password: hash,
			Role:     role,
			Status:   domain.AccountStatuses[g.accountWeights.Sample(g.rng)],
			Meta:     g.meta(),
		})
	}
	return store, nil
}

// roleHolders returns the staff IDs whose account holds the given role.
// An empty result is a precondition violation the caller cannot repair.
func roleHolders(accounts []domain.Account, role domain.AccountRole) ([]uuid.UUID, error) {
	var holders []uuid.UUID
	for _, account := range accounts {
		if account.Role == role {
			holders = append(holders, account.Staff)
		}
	}
	if len(holders) == 0 {
		return nil, ErrNoRoleHolders{Role: role}
	}
	return holders, nil
}

var (
	oldContractStatuses = []domain.ContractStatus{domain.ContractExpired, domain.ContractVoid, domain.ContractRejected}
	newContractStatuses = []domain.ContractStatus{domain.ContractReview, domain.ContractNegotiation, domain.ContractActive}
)

// SupplyContracts optionally spawns up to SupplyContractCount contracts per
// supplier. Only the most recent contract in a supplier's sequence may hold a
// currently-open status; all earlier ones are terminal.
func (g *Generator) SupplyContracts(suppliers []domain.Supplier, accounts []domain.Account) ([]domain.SupplyContract, error) {
	managers, err := roleHolders(accounts, domain.RoleManager)
	if err != nil {
		return nil, err
	}
	var store []domain.SupplyContract
	for _, supplier := range suppliers {
		if !g.contractChance.Sample(g.rng) {
			continue
		}
		count := g.rng.Intn(g.cfg.SupplyContractCount + 1)
		for i := 0; i < count; i++ {
			var status domain.ContractStatus
			if i+1 == count {
				status = pick(g.rng, newContractStatuses)
			} else {
				status = pick(g.rng, oldContractStatuses)
			}
			contract := domain.SupplyContract{
				ID:       uuid.New(),
				Supplier: supplier.ID,
				Manager:  pick(g.rng, managers),
				Status:   status,
				Meta:     g.meta(),
			}
			if status.SignedSupplyContract() {
				signed := g.now().UTC()
				contract.Signed = &signed
			}
			store = append(store, contract)
		}
	}
	return store, nil
}

// Orders spawns up to OrderCount-1 orders per phone. The client is the
// phone's owner except for a configured fraction of walk-ins.
func (g *Generator) Orders(persons []domain.Person, accounts []domain.Account, phones []domain.Phone) ([]domain.Order, error) {
	servicemen, err := roleHolders(accounts, domain.RoleServiceman)
	if err != nil {
		return nil, err
	}
	shopmen, err := roleHolders(accounts, domain.RoleShopman)
	if err != nil {
		return nil, err
	}
	var store []domain.Order
	for _, phone := range phones {
		count := g.rng.Intn(g.cfg.OrderCount)
		for i := 0; i < count; i++ {
			client := phone.Person
			if g.notOwnerChance.Sample(g.rng) {
				client = pick(g.rng, persons).ID
			}
			store = append(store, domain.Order{
				ID:         uuid.New(),
				Client:     client,
				Phone:      phone.ID,
				Serviceman: pick(g.rng, servicemen),
				Shopman:    pick(g.rng, shopmen),
				Status:     pick(g.rng, domain.OrderStatuses),
				Meta:       g.meta(),
			})
		}
	}
	return store, nil
}

// Supplies spawns up to SupplyCount supplies per signed supply contract,
// with the same most-recent-is-open sequencing as contracts.
func (g *Generator) Supplies(contracts []domain.SupplyContract, accounts []domain.Account) ([]domain.Supply, error) {
	workers, err := roleHolders(accounts, domain.RoleWarehouseWorker)
	if err != nil {
		return nil, err
	}
	var store []domain.Supply
	for _, contract := range contracts {
		if !contract.Status.SignedSupplyContract() {
			continue
		}
		count := g.rng.Intn(g.cfg.SupplyCount + 1)
		for i := 0; i < count; i++ {
			var status domain.SupplyStatus
			if i+1 == count {
				status = pick(g.rng, domain.OpenSupplyStatuses)
			} else {
				status = pick(g.rng, domain.ClosedSupplyStatuses)
			}
			supply := domain.Supply{
				ID:       uuid.New(),
				Contract: contract.ID,
				Staff:    pick(g.rng, workers),
				Status:   status,
				Meta:     g.meta(),
			}
			if status.Signed() {
				signed := g.now().UTC()
				supply.Signed = &signed
			}
			store = append(store, supply)
		}
	}
	return store, nil
}

// Warehouse stocks every component from a random subset of the suppliers
// holding a signed contract. The item price is the kind's base price
// jittered inside the configured scatter band.
func (g *Generator) Warehouse(components []domain.Component, contracts []domain.SupplyContract) ([]domain.Warehouse, error) {
	seen := make(map[uuid.UUID]bool)
	var suppliers []uuid.UUID
	for _, contract := range contracts {
		if contract.Status.SignedSupplyContract() && !seen[contract.Supplier] {
			seen[contract.Supplier] = true
			suppliers = append(suppliers, contract.Supplier)
		}
	}
	if len(suppliers) == 0 {
		return nil, fmt.Errorf("generator: no signed supply contracts to source warehouse stock from")
	}
	var store []domain.Warehouse
	for _, component := range components {
		base, ok := g.priceByKind[component.Kind]
		if !ok {
			return nil, fmt.Errorf("generator: component kind %s of %q has no price hint", component.Kind, component.Name)
		}
		variations := g.cfg.WarehouseVariations
		if variations > len(suppliers) {
			variations = len(suppliers)
		}
		count := 1 + g.rng.Intn(variations)
		for _, supplier := range shuffled(g.rng, suppliers)[:count] {
			amount := g.cfg.WarehouseStockMin
			if spread := g.cfg.WarehouseStockMax - g.cfg.WarehouseStockMin; spread > 0 {
				amount += g.rng.Intn(spread)
			}
			store = append(store, domain.Warehouse{
				ID:        uuid.New(),
				Component: component.ID,
				Supplier:  supplier,
				Price:     decimal.NewFromFloat(jitter(g.rng, base, g.cfg.WarehouseItemPriceScatter)).Round(2),
				Amount:    int32(amount),
				Meta:      g.meta(),
			})
		}
	}
	return store, nil
}

// ServicePhoneModels prices every service for every phone model as
// base price times the model's coefficient.
func (g *Generator) ServicePhoneModels(services []domain.Service, models []domain.PhoneModel) ([]domain.ServicePhoneModel, error) {
	store := make([]domain.ServicePhoneModel, 0, len(services)*len(models))
	for _, service := range services {
		base, ok := g.priceByService[service.ID]
		if !ok {
			return nil, fmt.Errorf("generator: service %q has no base price hint", service.Name)
		}
		for _, model := range models {
			coef, ok := g.coefByModel[model.ID]
			if !ok {
				return nil, fmt.Errorf("generator: phone model %q has no price coefficient hint", model.Name)
			}
			store = append(store, domain.ServicePhoneModel{
				Service:    service.ID,
				PhoneModel: model.ID,
				Price:      decimal.NewFromFloat(base * coef).Round(2),
				Meta:       g.meta(),
			})
		}
	}
	return store, nil
}

// WarehouseSupplies distributes each supplier's warehouse items across that
// supplier's supplies in proportional chunks. The chunk size is
// max(1, items/supplies); a supply takes the chunk at its ordinal position
// among its sibling supplies, absorbing a trailing undersized chunk rather
// than dropping it.
func (g *Generator) WarehouseSupplies(warehouse []domain.Warehouse, supplies []domain.Supply, contracts []domain.SupplyContract) ([]domain.WarehouseSupply, error) {
	supplierByContract := make(map[uuid.UUID]uuid.UUID, len(contracts))
	for _, contract := range contracts {
		supplierByContract[contract.ID] = contract.Supplier
	}
	suppliesBySupplier := make(map[uuid.UUID][]uuid.UUID)
	for _, supply := range supplies {
		supplier, ok := supplierByContract[supply.Contract]
		if !ok {
			return nil, fmt.Errorf("generator: supply %s references unknown contract %s", supply.ID, supply.Contract)
		}
		suppliesBySupplier[supplier] = append(suppliesBySupplier[supplier], supply.ID)
	}
	itemsBySupplier := make(map[uuid.UUID][]domain.Warehouse)
	for _, item := range warehouse {
		itemsBySupplier[item.Supplier] = append(itemsBySupplier[item.Supplier], item)
	}

	var store []domain.WarehouseSupply
	for _, supply := range supplies {
		supplier := supplierByContract[supply.Contract]
		siblings := suppliesBySupplier[supplier]
		items := itemsBySupplier[supplier]
		if len(items) == 0 {
			continue
		}
		pos := 0
		for i, id := range siblings {
			if id == supply.ID {
				pos = i
				break
			}
		}
		step := len(items) / len(siblings)
		if step == 0 {
			step = 1
		}
		start := pos * step
		if start >= len(items) {
			continue
		}
		end := start + step
		if end > len(items) {
			end = len(items)
		} else if rem := len(items) - end; rem > 0 && rem < step {
			// Absorb the trailing undersized chunk.
			end = len(items)
		}
		for _, item := range items[start:end] {
			store = append(store, domain.WarehouseSupply{
				Item:    item.ID,
				Supply:  supply.ID,
				Amount:  item.Amount,
				Created: supply.Meta.Updated,
			})
		}
	}
	return store, nil
}

// OrderServices picks, for each order, one service priced for the order's
// phone model. A model without any priced service is a data error.
func (g *Generator) OrderServices(orders []domain.Order, phones []domain.Phone, priced []domain.ServicePhoneModel) ([]domain.OrderService, error) {
	phoneByID := make(map[uuid.UUID]domain.Phone, len(phones))
	for _, phone := range phones {
		phoneByID[phone.ID] = phone
	}
	byModel := make(map[uuid.UUID][]domain.ServicePhoneModel)
	for _, spm := range priced {
		byModel[spm.PhoneModel] = append(byModel[spm.PhoneModel], spm)
	}
	store := make([]domain.OrderService, 0, len(orders))
	for _, order := range orders {
		phone, ok := phoneByID[order.Phone]
		if !ok {
			return nil, fmt.Errorf("generator: order %s references unknown phone %s", order.ID, order.Phone)
		}
		candidates := byModel[phone.Model]
		if len(candidates) == 0 {
			return nil, fmt.Errorf("generator: no priced services for phone model %s of order %s", phone.Model, order.ID)
		}
		spm := pick(g.rng, candidates)
		store = append(store, domain.OrderService{
			Order:   order.ID,
			Service: spm.Service,
			Price:   spm.Price,
		})
	}
	return store, nil
}

// OrderWarehouses traces each order through its sold service to the
// component it consumes and reserves one warehouse item for it at the item's
// current price.
func (g *Generator) OrderWarehouses(orders []domain.Order, orderServices []domain.OrderService, phones []domain.Phone, components []domain.Component, warehouse []domain.Warehouse) ([]domain.OrderWarehouse, error) {
	serviceByOrder := make(map[uuid.UUID]uuid.UUID, len(orderServices))
	for _, os := range orderServices {
		serviceByOrder[os.Order] = os.Service
	}
	phoneByID := make(map[uuid.UUID]domain.Phone, len(phones))
	for _, phone := range phones {
		phoneByID[phone.ID] = phone
	}
	type fit struct{ kind, model uuid.UUID }
	componentByFit := make(map[fit]uuid.UUID, len(components))
	for _, component := range components {
		componentByFit[fit{component.Kind, component.PhoneModel}] = component.ID
	}
	itemsByComponent := make(map[uuid.UUID][]domain.Warehouse)
	for _, item := range warehouse {
		itemsByComponent[item.Component] = append(itemsByComponent[item.Component], item)
	}

	store := make([]domain.OrderWarehouse, 0, len(orders))
	for _, order := range orders {
		serviceID, ok := serviceByOrder[order.ID]
		if !ok {
			return nil, fmt.Errorf("generator: order %s has no sold service", order.ID)
		}
		kindName, ok := g.kindNameByService[serviceID]
		if !ok {
			return nil, fmt.Errorf("generator: service %s has no component kind hint", serviceID)
		}
		kindID, ok := g.kindIDByName[kindName]
		if !ok {
			return nil, ErrSampleLookup{Catalog: "component kind", Name: kindName, For: order.ID.String()}
		}
		phone, ok := phoneByID[order.Phone]
		if !ok {
			return nil, fmt.Errorf("generator: order %s references unknown phone %s", order.ID, order.Phone)
		}
		componentID, ok := componentByFit[fit{kindID, phone.Model}]
		if !ok {
			return nil, fmt.Errorf("generator: no %s component catalogued for phone model %s", kindName, phone.Model)
		}
		items := itemsByComponent[componentID]
		if len(items) == 0 {
			return nil, fmt.Errorf("generator: no warehouse stock for component %s needed by order %s", componentID, order.ID)
		}
		item := pick(g.rng, items)
		store = append(store, domain.OrderWarehouse{
			Order:  order.ID,
			Item:   item.ID,
			Amount: 1,
			Price:  item.Price,
		})
	}
	return store, nil
}
