package env

const (
	// Prefix is the common prefix for oddscan ENV variables
	Prefix = "ODDSCAN"

	// APIKeySuffix is the ENV suffix for The Odds API key
	APIKeySuffix = "_API_KEY"
)
