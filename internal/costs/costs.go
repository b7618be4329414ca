// Package costs compares doing winter service yourself with hiring a
// professional crew for a given area, snow situation and visit count.
package costs

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MinArea is the smallest area the professional offer covers, in m²
	MinArea = 1000
	// MaxArea bounds the calculator to 100 ha; larger sites get an individual offer
	MaxArea = 1_000_000
	// MaxFrequency is one clearing per day of the year
	MaxFrequency = 365
)

var (
	ErrAreaTooSmall     = errors.New("area must be at least 1000 m²")
	ErrAreaTooLarge     = errors.New("area must be at most 1000000 m²")
	ErrMissingDepth     = errors.New("snow depth is required")
	ErrInvalidFrequency = errors.New("frequency must be at least 1")
	ErrFrequencyTooHigh = errors.New("frequency must be at most 365")
)

// Depth is the expected snow severity
type Depth int

const (
	Light Depth = iota + 1
	Medium
	Heavy
)

var depthNames = map[Depth]string{
	Light:  "light",
	Medium: "medium",
	Heavy:  "heavy",
}

func (d Depth) String() string {
	if name, ok := depthNames[d]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(d))
}

// ParseDepth accepts the German form values and their English equivalents
func ParseDepth(s string) (Depth, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leicht", "light":
		return Light, true
	case "mittel", "medium":
		return Medium, true
	case "stark", "heavy":
		return Heavy, true
	default:
		return 0, false
	}
}

func (d Depth) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Validate checks the estimator inputs. Estimate itself does not. The upper
// bounds keep every total finite so results always encode as JSON.
func Validate(area float64, depth Depth, frequency int) error {
	var errs []error
	switch {
	case math.IsNaN(area), area < MinArea:
		errs = append(errs, ErrAreaTooSmall)
	case area > MaxArea:
		errs = append(errs, ErrAreaTooLarge)
	}
	if _, ok := depthNames[depth]; !ok {
		errs = append(errs, ErrMissingDepth)
	}
	switch {
	case frequency < 1:
		errs = append(errs, ErrInvalidFrequency)
	case frequency > MaxFrequency:
		errs = append(errs, ErrFrequencyTooHigh)
	}
	return errors.Join(errs...)
}

// DIYEstimate is the cost of clearing the area with own staff and equipment
type DIYEstimate struct {
	EquipmentCost     float64 `json:"equipment_cost"`
	MaterialPerUse    float64 `json:"material_per_use"`
	LaborPerUse       float64 `json:"labor_per_use"`
	PerUseCost        float64 `json:"per_use_cost"`
	SeasonalCost      float64 `json:"seasonal_cost"`
	FirstYearCost     float64 `json:"first_year_cost"`
	HoursPerUse       float64 `json:"hours_per_use"`
	TotalTimeHours    float64 `json:"total_time_hours"`
	SpringCleanupCost float64 `json:"spring_cleanup_cost"`
}

// ProfessionalEstimate is the seasonal offer of a winter service crew
type ProfessionalEstimate struct {
	AreaCostPerSqm    float64 `json:"area_cost_per_sqm"`
	AreaCost          float64 `json:"area_cost"`
	MaterialCost      float64 `json:"material_cost"`
	SetupFee          float64 `json:"setup_fee"`
	DepthMultiplier   float64 `json:"depth_multiplier"`
	PerVisitCost      float64 `json:"per_visit_cost"`
	MonthlyFee        float64 `json:"monthly_fee"`
	SeasonalCost      float64 `json:"seasonal_cost"`
	SpringCleanupCost float64 `json:"spring_cleanup_cost"`
}

// Comparison holds both estimates. Difference is the professional seasonal
// total minus the DIY first-year total, which includes the equipment purchase.
type Comparison struct {
	Area         float64              `json:"area"`
	Depth        Depth                `json:"snow_depth" swaggertype:"string" enums:"light,medium,heavy"`
	Frequency    int                  `json:"frequency"`
	DIY          DIYEstimate          `json:"diy"`
	Professional ProfessionalEstimate `json:"professional"`
	Difference   float64              `json:"difference"`
}

// Estimate computes both cost estimates. Inputs are not validated: callers
// run Validate first. A frequency of zero yields an infinite per-visit cost.
func Estimate(area float64, depth Depth, frequency int) Comparison {
	diy := EstimateDIY(area, depth, frequency)
	pro := EstimateProfessional(area, depth, frequency)

	return Comparison{
		Area:         area,
		Depth:        depth,
		Frequency:    frequency,
		DIY:          diy,
		Professional: pro,
		Difference:   cents(pro.SeasonalCost - diy.FirstYearCost),
	}
}

// EstimateDIY computes the do-it-yourself branch
func EstimateDIY(area float64, depth Depth, frequency int) DIYEstimate {
	equipmentCost := 0.0
	for _, item := range equipment {
		equipmentCost += item.Price(depth)
	}

	hours := hoursPerUse(area, depth)
	material := materialPerUse(area)
	labor := hours * hourlyRate
	perUse := material + labor
	seasonal := perUse * float64(frequency)

	return DIYEstimate{
		EquipmentCost:     cents(equipmentCost),
		MaterialPerUse:    cents(material),
		LaborPerUse:       cents(labor),
		PerUseCost:        cents(perUse),
		SeasonalCost:      cents(seasonal),
		FirstYearCost:     cents(equipmentCost + seasonal),
		HoursPerUse:       cents(hours),
		TotalTimeHours:    cents(hours * float64(frequency)),
		SpringCleanupCost: cents(springCleanup(area)),
	}
}

// EstimateProfessional computes the banded professional offer
func EstimateProfessional(area float64, depth Depth, frequency int) ProfessionalEstimate {
	multiplier, ok := depthMultipliers[depth]
	if !ok {
		multiplier = depthMultipliers[Medium]
	}

	areaCost := bandedAreaCost(area)
	material := area * materialPerSqm
	total := (areaCost + material + baseFee) * multiplier
	perVisit := (total - baseFee - material) / float64(frequency)

	perSqm := 0.0
	if area > 0 {
		perSqm = areaCost / area
	}

	return ProfessionalEstimate{
		AreaCostPerSqm:    cents(perSqm),
		AreaCost:          cents(areaCost),
		MaterialCost:      cents(material),
		SetupFee:          baseFee,
		DepthMultiplier:   multiplier,
		PerVisitCost:      cents(perVisit),
		MonthlyFee:        monthlyStandbyFee(area),
		SeasonalCost:      cents(total),
		SpringCleanupCost: cents(springCleanup(area)),
	}
}

func springCleanup(area float64) float64 {
	return area * springCleanupPerSqm
}

// cents rounds half away from zero to two decimals. Values that decimal
// cannot represent (infinities, NaN) pass through unchanged.
func cents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
