package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"repaircore/pkg/domain"
)

// Config holds the recognized generation parameters. Start from
// DefaultConfig (or LoadConfig, which overlays a file onto the defaults) and
// override fields as needed; New validates but does not fill blanks.
type Config struct {
	// Seed seeds the RNG and the faker. Zero derives a seed from entropy.
	Seed int64 `yaml:"seed"`

	PersonCount           int     `yaml:"person_count"`
	SupplierCount         int     `yaml:"supplier_count"`
	PositionSalaryScatter float64 `yaml:"position_salary_scatter"`

	LaborContractCount   int   `yaml:"labor_contract_count"`
	LaborContractWeights []int `yaml:"labor_contract_weights"`

	StaffVacationChance float64 `yaml:"staff_vacation_chance"`

	AccountStatusWeights []int `yaml:"account_status_weights"`

	SupplyContractChance float64 `yaml:"supply_contract_chance"`
	SupplyContractCount  int     `yaml:"supply_contract_count"`

	// PhoneCount weights the number of extra phones per person: index i
	// means i extra phones beyond the first.
	PhoneCount []int `yaml:"phone_count"`

	WarehouseVariations       int     `yaml:"warehouse_variations"`
	WarehouseStockMin         int     `yaml:"warehouse_stock_min"`
	WarehouseStockMax         int     `yaml:"warehouse_stock_max"`
	WarehouseItemPriceScatter float64 `yaml:"warehouse_item_price_scatter"`

	// OrderCount is the exclusive upper bound of orders per phone.
	OrderCount          int     `yaml:"order_count"`
	OrderNotOwnerChance float64 `yaml:"order_not_owner_chance"`

	// SupplyCount is the inclusive upper bound of supplies per contract.
	SupplyCount int `yaml:"supply_count"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		PersonCount:               250,
		SupplierCount:             50,
		PositionSalaryScatter:     0.005,
		LaborContractCount:        25,
		LaborContractWeights:      []int{2, 2, 14, 1, 1, 1},
		StaffVacationChance:       0.15,
		AccountStatusWeights:      []int{18, 1, 1},
		SupplyContractChance:      0.8,
		SupplyContractCount:       3,
		PhoneCount:                []int{10, 1},
		WarehouseVariations:       5,
		WarehouseStockMin:         1,
		WarehouseStockMax:         3,
		WarehouseItemPriceScatter: 0.5,
		OrderCount:                3,
		OrderNotOwnerChance:       0.01,
		SupplyCount:               5,
	}
}

// fileConfig mirrors Config with optional scalars so an explicit zero in the
// file stays distinguishable from an absent key.
type fileConfig struct {
	Seed                      *int64   `yaml:"seed"`
	PersonCount               *int     `yaml:"person_count"`
	SupplierCount             *int     `yaml:"supplier_count"`
	PositionSalaryScatter     *float64 `yaml:"position_salary_scatter"`
	LaborContractCount        *int     `yaml:"labor_contract_count"`
	LaborContractWeights      []int    `yaml:"labor_contract_weights"`
	StaffVacationChance       *float64 `yaml:"staff_vacation_chance"`
	AccountStatusWeights      []int    `yaml:"account_status_weights"`
	SupplyContractChance      *float64 `yaml:"supply_contract_chance"`
	SupplyContractCount       *int     `yaml:"supply_contract_count"`
	PhoneCount                []int    `yaml:"phone_count"`
	WarehouseVariations       *int     `yaml:"warehouse_variations"`
	WarehouseStockMin         *int     `yaml:"warehouse_stock_min"`
	WarehouseStockMax         *int     `yaml:"warehouse_stock_max"`
	WarehouseItemPriceScatter *float64 `yaml:"warehouse_item_price_scatter"`
	OrderCount                *int     `yaml:"order_count"`
	OrderNotOwnerChance       *float64 `yaml:"order_not_owner_chance"`
	SupplyCount               *int     `yaml:"supply_count"`
}

func (f fileConfig) overlay(c *Config) {
	setInt64 := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setInt64(&c.Seed, f.Seed)
	setInt(&c.PersonCount, f.PersonCount)
	setInt(&c.SupplierCount, f.SupplierCount)
	setFloat(&c.PositionSalaryScatter, f.PositionSalaryScatter)
	setInt(&c.LaborContractCount, f.LaborContractCount)
	if f.LaborContractWeights != nil {
		c.LaborContractWeights = f.LaborContractWeights
	}
	setFloat(&c.StaffVacationChance, f.StaffVacationChance)
	if f.AccountStatusWeights != nil {
		c.AccountStatusWeights = f.AccountStatusWeights
	}
	setFloat(&c.SupplyContractChance, f.SupplyContractChance)
	setInt(&c.SupplyContractCount, f.SupplyContractCount)
	if f.PhoneCount != nil {
		c.PhoneCount = f.PhoneCount
	}
	setInt(&c.WarehouseVariations, f.WarehouseVariations)
	setInt(&c.WarehouseStockMin, f.WarehouseStockMin)
	setInt(&c.WarehouseStockMax, f.WarehouseStockMax)
	setFloat(&c.WarehouseItemPriceScatter, f.WarehouseItemPriceScatter)
	setInt(&c.OrderCount, f.OrderCount)
	setFloat(&c.OrderNotOwnerChance, f.OrderNotOwnerChance)
	setInt(&c.SupplyCount, f.SupplyCount)
}

// LoadConfig reads a YAML config file and overlays it onto the defaults.
// Only keys present in the file override; an explicit zero is honored.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := DefaultConfig()
	file.overlay(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the structural requirements the generators rely on.
// Violations are configuration bugs, reported before any generation starts.
func (c Config) Validate() error {
	if c.PersonCount < 0 || c.SupplierCount < 0 || c.LaborContractCount < 0 {
		return fmt.Errorf("config: counts must be non-negative")
	}
	if len(c.LaborContractWeights) != len(domain.ContractStatuses) {
		return fmt.Errorf("config: labor_contract_weights needs %d entries, got %d",
			len(domain.ContractStatuses), len(c.LaborContractWeights))
	}
	if len(c.AccountStatusWeights) != len(domain.AccountStatuses) {
		return fmt.Errorf("config: account_status_weights needs %d entries, got %d",
			len(domain.AccountStatuses), len(c.AccountStatusWeights))
	}
	if len(c.PhoneCount) == 0 {
		return fmt.Errorf("config: phone_count weight vector is empty")
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"position_salary_scatter", c.PositionSalaryScatter},
		{"staff_vacation_chance", c.StaffVacationChance},
		{"supply_contract_chance", c.SupplyContractChance},
		{"warehouse_item_price_scatter", c.WarehouseItemPriceScatter},
		{"order_not_owner_chance", c.OrderNotOwnerChance},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("config: %s %v outside [0,1]", p.name, p.value)
		}
	}
	if c.WarehouseStockMin < 0 || c.WarehouseStockMax < c.WarehouseStockMin {
		return fmt.Errorf("config: warehouse stock min %d and max %d do not form a valid range",
			c.WarehouseStockMin, c.WarehouseStockMax)
	}
	if c.WarehouseVariations < 1 {
		return fmt.Errorf("config: warehouse_variations must be at least 1")
	}
	if c.OrderCount < 1 {
		return fmt.Errorf("config: order_count must be at least 1")
	}
	return nil
}
