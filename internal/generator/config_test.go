package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateAllowsEqualStockBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WarehouseStockMin = 3
	cfg.WarehouseStockMax = 3
	if err := cfg.Validate(); err != nil {
		t.Fatalf("equal stock bounds rejected: %v", err)
	}
}

func TestValidateRejectsMalformedConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"contract weight arity", func(c *Config) { c.LaborContractWeights = []int{1, 2, 3} }},
		{"account weight arity", func(c *Config) { c.AccountStatusWeights = []int{1} }},
		{"chance above one", func(c *Config) { c.SupplyContractChance = 1.5 }},
		{"negative scatter", func(c *Config) { c.PositionSalaryScatter = -0.1 }},
		{"inverted stock range", func(c *Config) { c.WarehouseStockMin = 5; c.WarehouseStockMax = 2 }},
		{"zero order count", func(c *Config) { c.OrderCount = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "seed: 99\nperson_count: 40\nlabor_contract_count: 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 99 || cfg.PersonCount != 40 || cfg.LaborContractCount != 10 {
		t.Fatalf("explicit fields not honored: %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.SupplierCount != def.SupplierCount {
		t.Errorf("SupplierCount = %d, want default %d", cfg.SupplierCount, def.SupplierCount)
	}
	if cfg.SupplyCount != def.SupplyCount {
		t.Errorf("SupplyCount = %d, want default %d", cfg.SupplyCount, def.SupplyCount)
	}
}

func TestLoadConfigHonorsExplicitZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "person_count: 0\nsupply_contract_chance: 0\norder_not_owner_chance: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PersonCount != 0 {
		t.Errorf("PersonCount = %d, want explicit 0", cfg.PersonCount)
	}
	if cfg.SupplyContractChance != 0 {
		t.Errorf("SupplyContractChance = %v, want explicit 0", cfg.SupplyContractChance)
	}
	if cfg.OrderNotOwnerChance != 0 {
		t.Errorf("OrderNotOwnerChance = %v, want explicit 0", cfg.OrderNotOwnerChance)
	}
	if def := DefaultConfig(); cfg.SupplierCount != def.SupplierCount {
		t.Errorf("SupplierCount = %d, want default %d", cfg.SupplierCount, def.SupplierCount)
	}
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
