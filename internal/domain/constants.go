package domain

// Service names accepted for an assignment (the allow-list)
const (
	ServiceEssentialOils  = "essential_oils"
	ServicePsychosomatics = "psychosomatics"
)

// Services is the fixed allow-list of bookable services
var Services = []string{
	ServiceEssentialOils,
	ServicePsychosomatics,
}

// serviceLabels человекочитаемые названия услуг для писем
var serviceLabels = map[string]string{
	ServiceEssentialOils:  "Essential Oils",
	ServicePsychosomatics: "Psychosomatics",
}

// IsValidService reports whether name is in the allow-list
func IsValidService(name string) bool {
	_, ok := serviceLabels[name]
	return ok
}

// ServiceLabel returns the display name of a service.
// Unknown services are returned as-is.
func ServiceLabel(name string) string {
	if label, ok := serviceLabels[name]; ok {
		return label
	}
	return name
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
