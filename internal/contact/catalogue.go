package contact

import "facility-services/internal/i18n"

// Category slugs of the offered services, in display order
const (
	CategoryCleaning      = "cleaning"
	CategoryWinterService = "winter-service"
	CategorySecurity      = "security"
	CategoryDecluttering  = "decluttering"
	CategoryDemolition    = "demolition"
	CategoryRemediation   = "remediation"
	CategorySolar         = "solar"
	CategoryStaffing      = "staffing"
)

var categories = []string{
	CategoryCleaning,
	CategoryWinterService,
	CategorySecurity,
	CategoryDecluttering,
	CategoryDemolition,
	CategoryRemediation,
	CategorySolar,
	CategoryStaffing,
}

// Offering is one entry of the service catalogue
type Offering struct {
	Category string `json:"category" example:"winter-service"`
	Name     string `json:"name" example:"Winterdienst"`
	// Quotable services accept a cost estimate with the enquiry
	Quotable bool `json:"quotable"`
}

// Catalogue lists the offered services with names in tr's language
func Catalogue(tr *i18n.Translator) []Offering {
	out := make([]Offering, len(categories))
	for i, c := range categories {
		out[i] = Offering{
			Category: c,
			Name:     tr.Text("service." + c),
			Quotable: c == CategoryWinterService,
		}
	}
	return out
}

// KnownCategory reports whether slug names an offered service
func KnownCategory(slug string) bool {
	for _, c := range categories {
		if c == slug {
			return true
		}
	}
	return false
}
