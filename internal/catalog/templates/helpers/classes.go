package helpers

// ProductNameClass returns the class for a product name cell.
func ProductNameClass(stocked bool) string {
	if stocked {
		return "product-name"
	}
	return "product-name out-of-stock"
}

// EnvironmentBadgeClass maps environment labels to badge classes.
func EnvironmentBadgeClass(env string) string {
	switch env {
	case "Production":
		return "env-badge env-badge--production"
	case "Staging":
		return "env-badge env-badge--staging"
	default:
		return "env-badge"
	}
}
