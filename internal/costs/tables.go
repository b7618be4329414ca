package costs

import "math"

// EquipmentItem is a one-time purchase for doing winter service yourself
type EquipmentItem struct {
	Name  string
	Price func(depth Depth) float64
}

func fixed(price float64) func(Depth) float64 {
	return func(Depth) float64 { return price }
}

// heavyOnly prices an item differently when heavy snowfall is expected
func heavyOnly(heavy, otherwise float64) func(Depth) float64 {
	return func(d Depth) float64 {
		if d == Heavy {
			return heavy
		}
		return otherwise
	}
}

var equipment = []EquipmentItem{
	{Name: "Schneeschieber", Price: fixed(45)},
	{Name: "Schneeschaufel", Price: fixed(35)},
	{Name: "Eiskratzer", Price: fixed(20)},
	{Name: "Straßenbesen", Price: fixed(25)},
	{Name: "Streugutbehälter", Price: fixed(90)},
	{Name: "Winterarbeitskleidung", Price: fixed(120)},
	{Name: "Streuwagen", Price: heavyOnly(130, 80)},
	{Name: "Schneefräse", Price: heavyOnly(600, 0)},
}

// Equipment returns a copy of the DIY equipment list
func Equipment() []EquipmentItem {
	out := make([]EquipmentItem, len(equipment))
	copy(out, equipment)
	return out
}

// PriceBand is one tier of the professional area price. A band covers the
// area from the previous band's Max (0 for the first band) up to its own Max.
type PriceBand struct {
	Min         float64
	Max         float64
	PricePerSqm float64
}

var priceBands = []PriceBand{
	{Min: 1000, Max: 1500, PricePerSqm: 2.50},
	{Min: 1501, Max: 2000, PricePerSqm: 2.30},
	{Min: 2001, Max: 3000, PricePerSqm: 2.00},
	{Min: 3001, Max: 4000, PricePerSqm: 1.80},
	{Min: 4001, Max: 5000, PricePerSqm: 1.60},
	{Min: 5001, Max: 7500, PricePerSqm: 1.30},
	{Min: 7501, Max: 10000, PricePerSqm: 1.00},
	{Min: 10001, Max: math.Inf(1), PricePerSqm: 0.80},
}

// PriceBands returns a copy of the professional price table
func PriceBands() []PriceBand {
	out := make([]PriceBand, len(priceBands))
	copy(out, priceBands)
	return out
}

var depthMultipliers = map[Depth]float64{
	Light:  0.85,
	Medium: 1.0,
	Heavy:  1.25,
}

const (
	hourlyRate            = 25.0
	materialPerSqm        = 0.30
	baseFee               = 2500.0
	springCleanupPerSqm   = 0.25
	smallAreaMaterial     = 15.0
	mediumAreaMaterial    = 25.0
	largeAreaMaterialBase = 35.0
	largeAreaMaterialPer  = 5.0 // per 1000 m²
)

// hoursPerUse is how long one clearing takes by hand
func hoursPerUse(area float64, depth Depth) float64 {
	switch depth {
	case Light:
		return math.Max(1, area/500)
	case Heavy:
		return math.Max(2, area/250)
	default:
		return math.Max(1.5, area/350)
	}
}

// materialPerUse is the de-icing material spent on one clearing
func materialPerUse(area float64) float64 {
	switch {
	case area < 500:
		return smallAreaMaterial
	case area < 1000:
		return mediumAreaMaterial
	default:
		return largeAreaMaterialBase + area/1000*largeAreaMaterialPer
	}
}

// monthlyStandbyFee is charged for keeping a crew on call
func monthlyStandbyFee(area float64) float64 {
	switch {
	case area < 2500:
		return 40
	case area < 5000:
		return 60
	default:
		return 80
	}
}

// bandedAreaCost consumes the area band by band in ascending order
func bandedAreaCost(area float64) float64 {
	remaining := area
	lower := 0.0
	total := 0.0
	for _, band := range priceBands {
		if remaining <= 0 {
			break
		}
		width := band.Max - lower
		covered := math.Min(remaining, width)
		total += covered * band.PricePerSqm
		remaining -= covered
		lower = band.Max
	}
	return total
}
