package config

// AllowedMethods lists the HTTP methods the storefront uses cross-origin.
func AllowedMethods() []string {
	return []string{"GET", "POST", "PUT", "DELETE"}
}
