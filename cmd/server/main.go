package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httpadapter "sustainalens/internal/adapters/http"
	"sustainalens/internal/adapters/memory"
	pg "sustainalens/internal/adapters/postgres"
	"sustainalens/internal/config"
	"sustainalens/internal/logging"
	ports "sustainalens/internal/ports"
	assesssvc "sustainalens/internal/services/assessments"
	compsvc "sustainalens/internal/services/companies"
	disclsvc "sustainalens/internal/services/disclosures"
	"sustainalens/internal/scoring"
	"sustainalens/internal/workers/assessrunner"
)

type store interface {
	ports.CompanyRepository
	ports.DisclosureRepository
	ports.AssessmentRepository
	ports.JobRepository
}

func main() {
	cfg, cfgErr := config.Load()
	log, err := logging.New(cfg.LogFormat, cfg.Env != "production")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Fatal("load policy", zap.String("file", cfg.PolicyFile), zap.Error(err))
	}
	log.Info("policy loaded", zap.String("name", policy.Name()), zap.String("fingerprint", policy.Fingerprint()))

	var repo store
	if cfgErr != nil {
		log.Warn("using in-memory storage; data is lost on restart", zap.Error(cfgErr))
		repo = memory.New()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db connect", zap.Error(err))
		}
		defer db.Close()
		applied, err := db.Migrate(ctx)
		if err != nil {
			log.Fatal("db migrate", zap.Error(err))
		}
		log.Info("migrations applied", zap.Int64s("versions", applied))
		repo = db
	}

	engine := scoring.NewEngine(policy)
	companies := compsvc.New(repo, log.Named("companies"))
	disclosures := disclsvc.New(engine, repo, repo, log.Named("disclosures"))
	assessments := assesssvc.New(engine, repo, repo, log.Named("assessments"))
	processor := assessrunner.AssessProcessor{Assessments: assessments}

	srv := httpadapter.New(companies, disclosures, assessments, repo, processor, policy, log.Named("http"))
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	if cfg.AssessWorkers > 0 {
		assessrunner.Run(ctx, repo, processor, cfg.AssessWorkers, 500*time.Millisecond, log.Named("worker"))
		log.Info("assessment workers started", zap.Int("workers", cfg.AssessWorkers))
	}

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.Stringer("signal", sig))
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}
}
