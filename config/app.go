package config

import (
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string

	// TreatZeroQtyAsDefault makes an explicit qty of 0 collapse to 1,
	// matching what storefront clients have always relied on.
	TreatZeroQtyAsDefault bool

	BulkCap         int
	QuoteListCap    int
	PublicQuoteBase string
}

// Default returns the configuration used when no env is set.
func Default() *Config {
	return &Config{
		AppName:               "hotbray",
		Port:                  "10000",
		Env:                   "development",
		CORSOrigins:           []string{"http://localhost:3000"},
		TreatZeroQtyAsDefault: true,
		BulkCap:               100,
		QuoteListCap:          200,
		PublicQuoteBase:       "/quotes/",
	}
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		d := Default()
		AppConfig = &Config{
			AppName:               GetEnv("APP_NAME", d.AppName),
			Port:                  GetEnv("PORT", d.Port),
			Env:                   GetEnv("APP_ENV", d.Env),
			Debug:                 GetEnvBool("DEBUG", false),
			CORSOrigins:           GetEnvList("CORS_ORIGINS", d.CORSOrigins),
			TreatZeroQtyAsDefault: GetEnvBool("TREAT_ZERO_QTY_AS_DEFAULT", d.TreatZeroQtyAsDefault),
			BulkCap:               GetEnvInt("FAST_ORDER_BULK_CAP", d.BulkCap),
			QuoteListCap:          GetEnvInt("QUOTE_LIST_CAP", d.QuoteListCap),
			PublicQuoteBase:       GetEnv("PUBLIC_QUOTE_BASE", d.PublicQuoteBase),
		}
	})
	return AppConfig
}
