package parts

import (
	_ "embed"
	"html/template"
)

//go:embed css/quote.css
var quoteCSS string

// CriticalCSS returns the inline stylesheet for server-rendered pages.
func CriticalCSS() template.CSS {
	return template.CSS(quoteCSS)
}
