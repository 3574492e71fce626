// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: CoreConfig already covers
// ports, TLS, log level, and the other framework-level settings.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: lenshub_session)
	SessionDomain string // Cookie domain (blank means current host)

	// Club policy configuration
	AllowedEmailDomain string   // Institutional email domain members must register with
	AdminEmails        []string // Administrator allow-list, matched case-insensitively

	// Base URL of the deployed site, used in health and startup logging
	BaseURL string
}
