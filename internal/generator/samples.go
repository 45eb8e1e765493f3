package generator

import "repaircore/pkg/domain"

// The sample catalogs below seed every entity that is materialized from
// reference data rather than faked. Generators that consume a sample's hint
// values (account role, base price, price coefficient, implied component
// kind) receive them through lookup maps built once at materialization time,
// keyed by the generated identity.

// PositionSample describes one job title, its base salary, its selection
// weight for staffing, and the account role it implies.
type PositionSample struct {
	Name   string
	Salary float64
	Weight int
	Role   domain.AccountRole
}

// PositionSamples is the staffing catalog. Weights skew hiring towards the
// customer-facing roles every downstream generator depends on.
var PositionSamples = []PositionSample{
	{Name: "Director", Salary: 250000, Weight: 1, Role: domain.RoleAdmin},
	{Name: "Manager", Salary: 120000, Weight: 3, Role: domain.RoleManager},
	{Name: "HR Specialist", Salary: 80000, Weight: 1, Role: domain.RoleHR},
	{Name: "Accountant", Salary: 90000, Weight: 1, Role: domain.RoleAccountant},
	{Name: "Serviceman", Salary: 75000, Weight: 6, Role: domain.RoleServiceman},
	{Name: "Shop Assistant", Salary: 60000, Weight: 4, Role: domain.RoleShopman},
	{Name: "Warehouse Worker", Salary: 55000, Weight: 4, Role: domain.RoleWarehouseWorker},
}

// ManufacturerSample names a manufacturer and its country of registration.
type ManufacturerSample struct {
	Name    string
	Country string
}

// ManufacturerSamples lists every manufacturer referenced by the phone-model
// and component catalogs.
var ManufacturerSamples = []ManufacturerSample{
	{Name: "Apple", Country: "US"},
	{Name: "Samsung", Country: "KR"},
	{Name: "FoxCon", Country: "TW"},
}

// ComponentKindSample describes a component category and the base price used
// to derive warehouse item prices.
type ComponentKindSample struct {
	Name    string
	Details string
	Price   float64
}

// ComponentKindSamples is the component category catalog.
var ComponentKindSamples = []ComponentKindSample{
	{Name: "Battery", Price: 5000},
	{Name: "Screen Display", Price: 10000},
	{Name: "RAM", Price: 20000},
	{Name: "Memory", Price: 18500},
	{Name: "Screen Glass", Price: 12500},
}

// ServiceSample describes a repair service, its base price, and the component
// kind it consumes.
type ServiceSample struct {
	Name        string
	Description string
	Price       float64
	Kind        string
}

// ServiceSamples is the service catalog. Kind must resolve against
// ComponentKindSamples by name.
var ServiceSamples = []ServiceSample{
	{Name: "Battery replacement", Price: 10000, Kind: "Battery"},
	{Name: "Screen display replacement", Price: 15000, Kind: "Screen Display"},
	{Name: "RAM Fix", Description: "Replace malfunctioning RAM bank", Price: 25000, Kind: "RAM"},
	{Name: "Memory Fix", Description: "Replace malfunctioning memory bank", Price: 20000, Kind: "Memory"},
	{Name: "Screen glass replacement", Price: 12500, Kind: "Screen Glass"},
}

// PhoneModelSample describes a phone model, its manufacturer, and the price
// coefficient applied to service base prices.
type PhoneModelSample struct {
	Name         string
	Description  string
	Manufacturer string
	Coefficient  float64
}

// PhoneModelSamples is the phone model catalog. Manufacturer must resolve
// against ManufacturerSamples by name.
var PhoneModelSamples = []PhoneModelSample{
	{
		Name:         "IPhone 13",
		Description:  "A dramatically more powerful camera system. A display so responsive, every interaction feels new again. The world's fastest smartphone chip. Exceptional durability. And a huge leap in battery life.",
		Manufacturer: "Apple",
		Coefficient:  1.45,
	},
	{Name: "IPhone 13 Pro", Manufacturer: "Apple", Coefficient: 1.5},
	{Name: "IPhone XR", Manufacturer: "Apple", Coefficient: 1.25},
	{
		Name:         "Galaxy S21 FE Pro",
		Description:  "Get more out of the activities you heart most with Galaxy S21 FE 5G. Whether you're a gaming guru or social media star, this crowd pleaser has the style, power and pro-grade camera to unleash epic in the everyday.",
		Manufacturer: "Samsung",
		Coefficient:  1.3,
	},
	{Name: "Galaxy S22 Ultra", Manufacturer: "Samsung", Coefficient: 1.3},
	{Name: "Galaxy S22+", Manufacturer: "Samsung", Coefficient: 1.25},
}

// ComponentSample describes one replacement part: its kind, the phone model
// it fits, and who manufactures it.
type ComponentSample struct {
	Name         string
	Kind         string
	PhoneModel   string
	Manufacturer string
}

// ComponentSamples covers every (kind, model) pair so that each order can
// always be traced to a stocked part. Apple parts come from the contract
// manufacturer.
var ComponentSamples = buildComponentSamples()

func buildComponentSamples() []ComponentSample {
	samples := make([]ComponentSample, 0, len(ComponentKindSamples)*len(PhoneModelSamples))
	for _, model := range PhoneModelSamples {
		maker := model.Manufacturer
		if maker == "Apple" {
			maker = "FoxCon"
		}
		for _, kind := range ComponentKindSamples {
			samples = append(samples, ComponentSample{
				Name:         model.Name + " " + kind.Name,
				Kind:         kind.Name,
				PhoneModel:   model.Name,
				Manufacturer: maker,
			})
		}
	}
	return samples
}
