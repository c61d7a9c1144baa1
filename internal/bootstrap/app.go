package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-critic/internal/documents"
	"resume-critic/internal/engine"
	"resume-critic/internal/evaluations"
	"resume-critic/internal/matching"
	"resume-critic/internal/shared/config"
	"resume-critic/internal/shared/server"
	"resume-critic/internal/shared/storage/db"
	"resume-critic/internal/shared/storage/object"
	localstore "resume-critic/internal/shared/storage/object/local"
	s3store "resume-critic/internal/shared/storage/object/s3"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo   documents.Repo
	EvaluationsRepo evaluations.Repo

	DocumentsService    *documents.Service
	EvaluationsService  *evaluations.Service
	EvaluationProcessor evaluations.Processor

	DocumentsHandler   *documents.Handler
	EvaluationsHandler *evaluations.Handler
	MatchHandler       *matching.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		DocumentHandler:   app.DocumentsHandler,
		EvaluationHandler: app.EvaluationsHandler,
		MatchHandler:      app.MatchHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
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

func buildServices(app *App) {
	var docRepo documents.Repo
	var evalRepo evaluations.Repo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		evalRepo = &evaluations.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		evalRepo = evaluations.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store:           app.Store,
		Repo:            docRepo,
		StorageProvider: app.Config.ObjectStoreType,
	}

	evalSvc := &evaluations.Service{
		Repo:          evalRepo,
		DocRepo:       docRepo,
		Store:         app.Store,
		Engine:        engine.New(nil),
		EngineVersion: app.Config.EngineVersion,
	}

	app.DocumentsRepo = docRepo
	app.EvaluationsRepo = evalRepo
	app.DocumentsService = docSvc
	app.EvaluationsService = evalSvc
	app.EvaluationProcessor = evalSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.EvaluationsHandler = evaluations.NewHandler(evalSvc, app.EvaluationProcessor)
	app.MatchHandler = matching.NewHandler(evalSvc)
}
