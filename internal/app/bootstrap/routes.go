// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/admin"
	applicationsfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/applications"
	authfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/auth"
	eventsfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/events"
	feedbackfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/feedback"
	galleryfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/gallery"
	healthfeature "github.com/pclub-iiitnr/lenshub/internal/app/features/health"
	"github.com/pclub-iiitnr/lenshub/internal/app/gateway/authgw"
	"github.com/pclub-iiitnr/lenshub/internal/app/policy/domainpolicy"
	accountstore "github.com/pclub-iiitnr/lenshub/internal/app/store/accounts"
	applicationstore "github.com/pclub-iiitnr/lenshub/internal/app/store/applications"
	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	eventstore "github.com/pclub-iiitnr/lenshub/internal/app/store/events"
	feedbackstore "github.com/pclub-iiitnr/lenshub/internal/app/store/feedback"
	gallerystore "github.com/pclub-iiitnr/lenshub/internal/app/store/gallery"
	workshopstore "github.com/pclub-iiitnr/lenshub/internal/app/store/workshops"
	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The static club site is served from
// public/; everything dynamic lives under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Session cookies are Secure in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := sysauth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	policy := domainpolicy.New(appCfg.AllowedEmailDomain, appCfg.AdminEmails)

	// Stores
	db := deps.MongoDatabase
	docs := docstore.New(db, logger)
	accounts := accountstore.New(db)
	apps := applicationstore.New(docs)
	fb := feedbackstore.New(docs)
	gallery := gallerystore.New(docs)
	events := eventstore.New(docs, logger)
	workshops := workshopstore.New(docs, logger)

	// Auth gateway over the Mongo-backed identity provider
	gw := authgw.New(identity.NewStore(db), accounts, policy, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Throttle credential guessing and feedback spam per client IP.
	authLimiter := ratelimit.New(20, time.Minute)
	feedbackLimiter := ratelimit.New(5, time.Minute)

	// JSON API the page scripts call
	r.Route("/api", func(api chi.Router) {
		api.With(ratelimit.Middleware(authLimiter)).
			Mount("/auth", authfeature.Routes(authfeature.NewHandler(gw, sessionMgr, logger)))
		api.Mount("/applications", applicationsfeature.Routes(applicationsfeature.NewHandler(apps, logger)))
		api.With(ratelimit.Middleware(feedbackLimiter)).
			Mount("/feedback", feedbackfeature.Routes(feedbackfeature.NewHandler(fb, logger)))
		api.Mount("/gallery", galleryfeature.Routes(galleryfeature.NewHandler(gallery, logger)))
		api.Mount("/", eventsfeature.Routes(eventsfeature.NewHandler(events, workshops, logger)))

		adminHandler := &adminfeature.Handler{
			Accounts:  accounts,
			Apps:      apps,
			Fb:        fb,
			Gallery:   gallery,
			Events:    events,
			Workshops: workshops,
			Docs:      docs,
			Log:       logger,
		}
		api.Mount("/admin", adminfeature.Routes(adminHandler, policy))
	})

	// Static club site with pre-compressed file support (gzip/brotli)
	r.Handle("/*", fileserver.Handler("/", "public"))

	return r, nil
}
