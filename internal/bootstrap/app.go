package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/applications"
	"jobportal-backend/internal/contact"
	"jobportal-backend/internal/joboffers"
	"jobportal-backend/internal/shared/config"
	"jobportal-backend/internal/shared/server"
	"jobportal-backend/internal/shared/storage/db"
	"jobportal-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	DB                  *sql.DB
	JobOffersRepo       joboffers.Repo
	ApplicationsRepo    applications.Repo
	UsersRepo           users.Repo
	JobOffersService    *joboffers.Service
	ApplicationsService *applications.Service
	UsersService        *users.Service
	Dispatcher          contact.Dispatcher
}

// setupStep is one ordered unit of storage preparation. Steps run in
// sequence and the first failure aborts startup.
type setupStep struct {
	Name string
	Run  func(ctx context.Context) error
}

// Build prepares shared dependencies and runs the storage setup sequence
// before the router is assembled. With no DATABASE_URL in a dev-like
// environment it serves from in-memory repositories.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB

	buildRepos(app)
	buildServices(app)

	for _, step := range setupSteps(app) {
		if err := step.Run(ctx); err != nil {
			return nil, fmt.Errorf("setup %s: %w", step.Name, err)
		}
		log.Printf("bootstrap: %s ok", step.Name)
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              cfg,
		JobOffersHandler:    joboffers.NewHandler(app.JobOffersService),
		ApplicationsHandler: applications.NewHandler(app.ApplicationsService, cfg.MaxUploadBytes),
		UsersHandler:        users.NewHandler(app.UsersService),
		ContactHandler:      contact.NewHandler(app.Dispatcher, cfg.ContactRecipient),
	})

	return app, nil
}

// Close releases pooled resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildRepos(app *App) {
	if app.DB != nil {
		app.JobOffersRepo = &joboffers.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		return
	}
	app.JobOffersRepo = joboffers.NewMemoryRepo()
	app.ApplicationsRepo = applications.NewMemoryRepo()
	app.UsersRepo = users.NewMemoryRepo()
}

func buildServices(app *App) {
	app.JobOffersService = joboffers.NewService(app.JobOffersRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo)
	app.UsersService = users.NewService(app.UsersRepo)

	if app.Config.SMTPHost != "" {
		app.Dispatcher = contact.NewSMTPDispatcher(
			app.Config.SMTPHost,
			app.Config.SMTPPort,
			app.Config.SMTPUsername,
			app.Config.SMTPPassword,
		)
	} else {
		app.Dispatcher = unconfiguredDispatcher{}
	}
}

func setupSteps(app *App) []setupStep {
	return []setupStep{
		{
			Name: "schema migrations",
			Run: func(ctx context.Context) error {
				return db.RunMigrations(ctx, app.DB)
			},
		},
		{
			Name: "seed admin user",
			Run: func(ctx context.Context) error {
				return app.UsersService.EnsureSeed(ctx, app.Config.SeedUsername, app.Config.SeedPassword)
			},
		},
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type unconfiguredDispatcher struct{}

func (unconfiguredDispatcher) Send(ctx context.Context, msg contact.Message) error {
	_ = ctx
	_ = msg
	return fmt.Errorf("%w: SMTP relay not configured", contact.ErrDispatch)
}
