package generator

import "testing"

func TestServiceSamplesResolveComponentKinds(t *testing.T) {
	kinds := make(map[string]bool, len(ComponentKindSamples))
	for _, k := range ComponentKindSamples {
		kinds[k.Name] = true
	}
	for _, s := range ServiceSamples {
		if !kinds[s.Kind] {
			t.Errorf("service %q names unknown component kind %q", s.Name, s.Kind)
		}
	}
}

func TestPhoneModelSamplesResolveManufacturers(t *testing.T) {
	makers := make(map[string]bool, len(ManufacturerSamples))
	for _, m := range ManufacturerSamples {
		makers[m.Name] = true
	}
	for _, m := range PhoneModelSamples {
		if !makers[m.Manufacturer] {
			t.Errorf("model %q names unknown manufacturer %q", m.Name, m.Manufacturer)
		}
		if m.Coefficient <= 0 {
			t.Errorf("model %q has non-positive coefficient %v", m.Name, m.Coefficient)
		}
	}
}

func TestComponentSamplesCoverEveryKindModelPair(t *testing.T) {
	seen := make(map[[2]string]bool, len(ComponentSamples))
	makers := make(map[string]bool, len(ManufacturerSamples))
	for _, m := range ManufacturerSamples {
		makers[m.Name] = true
	}
	for _, c := range ComponentSamples {
		seen[[2]string{c.Kind, c.PhoneModel}] = true
		if !makers[c.Manufacturer] {
			t.Errorf("component %q names unknown manufacturer %q", c.Name, c.Manufacturer)
		}
	}
	for _, k := range ComponentKindSamples {
		for _, m := range PhoneModelSamples {
			if !seen[[2]string{k.Name, m.Name}] {
				t.Errorf("no component for kind %q and model %q", k.Name, m.Name)
			}
		}
	}
}

func TestPositionSamplesHavePositiveWeights(t *testing.T) {
	total := 0
	for _, p := range PositionSamples {
		if p.Weight <= 0 {
			t.Errorf("position %q has weight %d", p.Name, p.Weight)
		}
		if p.Salary <= 0 {
			t.Errorf("position %q has salary %v", p.Name, p.Salary)
		}
		total += p.Weight
	}
	if total == 0 {
		t.Fatal("position weights sum to zero")
	}
}
