package router

import (
	"context"
	"fmt"
	"net/http"

	_ "pharmacy-fulfillment/docs"
	"pharmacy-fulfillment/internal/adapters/auth/jwtauth"
	"pharmacy-fulfillment/internal/adapters/notify/socket"
	mem "pharmacy-fulfillment/internal/adapters/storage/memory"
	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/catalog"
	"pharmacy-fulfillment/internal/domain/requests"
	"pharmacy-fulfillment/internal/middleware"
	"pharmacy-fulfillment/internal/platform/config"
	"pharmacy-fulfillment/internal/platform/logger"
	"pharmacy-fulfillment/internal/platform/metrics"
	"pharmacy-fulfillment/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config

	// Opcional: por defecto descarta logs.
	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	authority := jwtauth.New(jwtauth.Config{Secret: cfg.Auth.JWTSecret, TTL: cfg.Auth.TokenTTL})

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuthContext(authority, cfg.Auth.DevMode))
	// RequestLog envuelve a Recoverer: un panic queda registrado como 500.
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Repos in-memory (con datos de demo si está habilitado)
	var (
		medicineSeed []catalog.Medicine
		requestSeed  []requests.Request
	)
	if cfg.Seed.DemoData {
		medicineSeed = seed.Medicines()
		requestSeed = seed.Requests()
	}

	actorRepo := mem.NewActorRepo()
	medicineRepo := mem.NewMedicineRepo(medicineSeed...)
	ledger, err := mem.NewRequestLedger(requestSeed...)
	if err != nil {
		return nil, fmt.Errorf("request ledger: %w", err)
	}
	if cfg.Seed.DemoData {
		if err := seed.Actors(context.Background(), actorRepo, requestSeed); err != nil {
			return nil, err
		}
		log.Info("demo data loaded", logger.Fields{
			"medicines": len(medicineSeed),
			"requests":  len(requestSeed),
		})
	}

	rec := metrics.New()
	hub := socket.NewHub(log)

	// Services por módulo
	actorsSvc := actors.NewService(actorRepo)
	catalogSvc := catalog.NewService(medicineRepo)
	lifecycle := requests.NewService(ledger, actorRepo, catalogSvc,
		requests.WithLogger(log),
		requests.WithNotifier(hub),
		requests.WithMetrics(rec),
	)

	// Infra
	r.Handle("/metrics", rec.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/ws", hub.ServeWs(authority, actorsSvc))

	// Rutas por módulo
	actors.RegisterRoutes(r, actorsSvc, authority)
	catalog.RegisterRoutes(r, catalogSvc, actorsSvc)
	requests.RegisterRoutes(r, lifecycle, catalogSvc, actorsSvc)

	return r, nil
}
