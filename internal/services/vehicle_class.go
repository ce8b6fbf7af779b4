package services

import "strings"

// Vehicle categories understood by delegated calculators.
const (
	CategorySedan     = "Sedan"
	CategoryBike      = "Bike"
	CategorySmallSUV  = "Small SUV"
	CategoryBigSUV    = "Big SUV"
	CategoryPickup    = "Pickup"
	CategoryVan       = "Van"
	CategoryBigVan    = "Big Van"
	CategoryUndefined = "undefined"
)

// Weight classes understood by delegated calculators.
const (
	WeightStandard = "standard"
	WeightHeavy    = "heavy"
)

var heavyKeywords = []string{"heavy", "oversize", "truck", "bus", "motorhome", "rv"}

// ClassifyVehicle maps free-text vehicle type/category fields onto the
// weight class and category a delegated calculator expects. The match
// is deterministic keyword lookup; absence of keywords defaults to
// standard/undefined.
func ClassifyVehicle(typeText, categoryHint string) (weight, category string) {
	text := strings.ToLower(typeText + " " + categoryHint)

	weight = WeightStandard
	if containsAny(text, heavyKeywords) {
		weight = WeightHeavy
	}

	switch {
	case containsAny(text, []string{"motorcycle", "moto", "bike", "atv", "scooter"}):
		category = CategoryBike
	case containsAny(text, []string{"pickup", "pick-up"}):
		category = CategoryPickup
	case containsAny(text, []string{"sprinter", "cargo van", "big van"}):
		category = CategoryBigVan
	case containsAny(text, []string{"van", "minivan"}):
		category = CategoryVan
	case containsAny(text, []string{"suv", "crossover", "4x4"}):
		if containsAny(text, []string{"big", "large", "full-size", "full size", "xl"}) {
			category = CategoryBigSUV
		} else {
			category = CategorySmallSUV
		}
	case containsAny(text, []string{"sedan", "coupe", "hatchback", "wagon", "convertible"}):
		category = CategorySedan
	default:
		category = CategoryUndefined
	}

	return weight, category
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
