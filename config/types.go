// config/types.go
package config

// Config structure
type Config struct {
	Debug       bool   `json:"debug"`
	Precision   int    `json:"precision"`
	Pattern     string `json:"pattern"`
	SimpleMatch bool   `json:"simple_match"`
}

// Default returns the configuration used when config.json is absent.
func Default() Config {
	return Config{
		Debug:       false,
		Precision:   2,
		Pattern:     "",
		SimpleMatch: false,
	}
}
