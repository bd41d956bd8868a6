package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	mem "pet-adoption-shelter/internal/adapters/storage/memory"
	pg "pet-adoption-shelter/internal/adapters/storage/postgres"
	"pet-adoption-shelter/internal/domain/animals"
	"pet-adoption-shelter/internal/domain/history"
	"pet-adoption-shelter/internal/domain/login"
	"pet-adoption-shelter/internal/domain/requests"
	"pet-adoption-shelter/internal/domain/tasks"
	"pet-adoption-shelter/internal/domain/users"
	"pet-adoption-shelter/internal/middleware"
	"pet-adoption-shelter/internal/platform/audit"
	"pet-adoption-shelter/internal/platform/logger"
	"pet-adoption-shelter/internal/ports/auth"

	_ "pet-adoption-shelter/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AdminSeed es el administrador que se crea al arrancar si todavía no existe.
type AdminSeed struct {
	Nombre   string
	Correo   string
	Password string
}

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger   logger.Logger
	Verifier auth.AuthVerifier
	Issuer   auth.TokenIssuer
	Audit    audit.Recorder

	LoginRateLimit  int
	LoginRateWindow time.Duration

	EnforceRequestTransitions bool
	CORSAllowedOrigins        []string
	// Sólo estos proxies pueden fijar la IP del cliente vía X-Forwarded-For.
	TrustedProxies []string

	// Admin con Correo vacío => no se siembra.
	Admin AdminSeed
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Issuer == nil {
		return nil, errors.New("router: Issuer es requerido")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	recorder := opts.Audit
	if recorder == nil {
		recorder = audit.Nop{}
	}
	if opts.LoginRateLimit <= 0 {
		opts.LoginRateLimit = 10
	}
	if opts.LoginRateWindow <= 0 {
		opts.LoginRateWindow = 15 * time.Minute
	}

	var (
		userRepo    users.Repository
		animalRepo  animals.Repository
		historyRepo history.Repository
		taskRepo    tasks.Repository
		requestRepo requests.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		historyRepo = pg.NewHistoryRepo(opts.DB)
		taskRepo = pg.NewTasksRepo(opts.DB)
		requestRepo = pg.NewRequestsRepo(opts.DB)
	} else {
		log.Warn("sin DB_DSN: usando repositorios en memoria", nil)
		userRepo = mem.NewUserRepo()
		animalRepo = mem.NewAnimalRepo()
		historyRepo = mem.NewHistoryRepo()
		taskRepo = mem.NewTaskRepo()
		requestRepo = mem.NewRequestRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	animalsSvc := animals.NewService(animalRepo)
	historySvc := history.NewService(historyRepo, animalsSvc)
	tasksSvc := tasks.NewService(taskRepo)
	requestsSvc := requests.NewService(requestRepo, animalsSvc, requests.Options{
		EnforceTransitions: opts.EnforceRequestTransitions,
	})
	loginSvc := login.NewService(usersSvc, opts.Issuer, recorder)

	if opts.Admin.Correo != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		u, created, err := usersSvc.EnsureAdmin(ctx, opts.Admin.Nombre, opts.Admin.Correo, opts.Admin.Password)
		if err != nil {
			return nil, err
		}
		if created {
			log.Info("admin inicial creado", map[string]any{"id_usuario": u.ID, "correo": u.Correo})
		}
	}

	realIP, err := middleware.TrustedRealIP(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(realIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(opts.CORSAllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		login.RegisterRoutes(api, loginSvc, login.RateLimit{
			Limit:  opts.LoginRateLimit,
			Window: opts.LoginRateWindow,
		})
		users.RegisterRoutes(api, usersSvc)
		animals.RegisterRoutes(api, animalsSvc)
		history.RegisterRoutes(api, historySvc)
		tasks.RegisterRoutes(api, tasksSvc)
		requests.RegisterRoutes(api, requestsSvc)
	})

	return r, nil
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
