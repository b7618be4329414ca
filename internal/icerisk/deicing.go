package icerisk

import "facility-services/internal/i18n"

// Recommendation is the amount of de-icing material to spread per 100 m²
type Recommendation struct {
	Risk                Risk    `json:"risk" swaggertype:"string" enums:"low,medium,high"`
	SaltKgPer100m2      float64 `json:"salt_kg_per_100m2" example:"4"`
	GranulateKgPer100m2 float64 `json:"granulate_kg_per_100m2" example:"10"`
	Description         string  `json:"description"`
}

type dosage struct {
	salt      float64
	granulate float64
}

var dosages = map[Risk]dosage{
	High:   {salt: 4, granulate: 10},
	Medium: {salt: 3, granulate: 6},
	Low:    {salt: 2, granulate: 3},
}

// RecommendDeicing returns the dosage for a risk level. Unknown levels get the
// low-risk dosage.
func RecommendDeicing(risk Risk) Recommendation {
	return RecommendDeicingIn(i18n.Default().Translator(), risk)
}

// RecommendDeicingIn is RecommendDeicing with the description rendered by tr
func RecommendDeicingIn(tr *i18n.Translator, risk Risk) Recommendation {
	d, ok := dosages[risk]
	if !ok {
		risk = Low
		d = dosages[Low]
	}

	return Recommendation{
		Risk:                risk,
		SaltKgPer100m2:      d.salt,
		GranulateKgPer100m2: d.granulate,
		Description:         tr.Text("deicing." + risk.String()),
	}
}
