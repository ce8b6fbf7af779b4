package services

import "testing"

func TestClassifyVehicle(t *testing.T) {
	cases := []struct {
		typeText     string
		categoryHint string
		wantWeight   string
		wantCategory string
	}{
		{"Sedan 4dr", "", WeightStandard, CategorySedan},
		{"Harley Davidson Motorcycle", "", WeightStandard, CategoryBike},
		{"", "pickup", WeightStandard, CategoryPickup},
		{"Mercedes Sprinter", "", WeightStandard, CategoryBigVan},
		{"Minivan", "", WeightStandard, CategoryVan},
		{"Compact SUV", "", WeightStandard, CategorySmallSUV},
		{"Full-size SUV", "", WeightStandard, CategoryBigSUV},
		{"Heavy Duty Truck", "", WeightHeavy, CategoryUndefined},
		{"", "", WeightStandard, CategoryUndefined},
		{"something unrecognizable", "", WeightStandard, CategoryUndefined},
	}

	for _, c := range cases {
		weight, category := ClassifyVehicle(c.typeText, c.categoryHint)
		if weight != c.wantWeight {
			t.Errorf("ClassifyVehicle(%q, %q) weight = %q, want %q", c.typeText, c.categoryHint, weight, c.wantWeight)
		}
		if category != c.wantCategory {
			t.Errorf("ClassifyVehicle(%q, %q) category = %q, want %q", c.typeText, c.categoryHint, category, c.wantCategory)
		}
	}
}

func TestClassifyVehicleIsDeterministic(t *testing.T) {
	w1, c1 := ClassifyVehicle("Big Cargo Van", "heavy")
	w2, c2 := ClassifyVehicle("Big Cargo Van", "heavy")

	if w1 != w2 || c1 != c2 {
		t.Fatalf("classification not deterministic: (%q, %q) vs (%q, %q)", w1, c1, w2, c2)
	}
}
