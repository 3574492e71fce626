// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LensHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: LENSHUB_MONGO_URI, LENSHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lenshub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "lenshub_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Club policy
	{Name: "allowed_email_domain", Default: "iiitnr.edu.in", Desc: "Email domain members must register with"},
	{Name: "admin_emails", Default: "", Desc: "Comma-separated administrator emails"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL of the deployed site"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// Merging precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LENSHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AllowedEmailDomain: appValues.String("allowed_email_domain"),
		AdminEmails:        splitEmails(appValues.String("admin_emails")),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// splitEmails parses a comma-separated admin list, dropping empties.
func splitEmails(csv string) []string {
	var out []string
	for _, e := range strings.Split(csv, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// LensHub validates the MongoDB URI format and the domain policy inputs
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	// An empty domain would fail every registration; refuse to start that way.
	if appCfg.AllowedEmailDomain == "" {
		return fmt.Errorf("allowed_email_domain must be set")
	}
	if strings.ContainsAny(appCfg.AllowedEmailDomain, "@ ") {
		return fmt.Errorf("allowed_email_domain %q must be a bare domain like iiitnr.edu.in", appCfg.AllowedEmailDomain)
	}

	for _, e := range appCfg.AdminEmails {
		if !strings.Contains(e, "@") {
			return fmt.Errorf("admin_emails entry %q is not an email address", e)
		}
	}

	if len(appCfg.AdminEmails) == 0 {
		logger.Warn("no admin_emails configured; the admin panel will be unreachable")
	}

	return nil
}
