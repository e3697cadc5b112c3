package app

import (
	"context"
	"log"
	"time"

	"resume-tailor/internal/config"
	"resume-tailor/internal/database"
	dbpostgres "resume-tailor/internal/database/postgres"
	"resume-tailor/internal/domain/job"
	"resume-tailor/internal/domain/resume"
	"resume-tailor/internal/domain/scoring"
	"resume-tailor/internal/domain/skills"
	"resume-tailor/internal/domain/tailoring"
	"resume-tailor/internal/fetcher"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/render"
	"resume-tailor/internal/repository"
	"resume-tailor/internal/store"
	"resume-tailor/internal/usecase"
	"resume-tailor/internal/ws"
)

// Container owns every long-lived dependency. Optional integrations that do
// not come up stay nil and the service degrades to its built-in behavior.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB         database.DB
	RedisStats *store.RedisStats
	Stats      store.StatsStore
	History    repository.HistoryRepository
	Generator  llm.Generator
	Hub        *ws.Hub

	ResumeUC usecase.ResumeUsecase
	JobUC    usecase.JobUsecase
	TailorUC usecase.TailorUsecase
	PDFUC    usecase.PDFUsecase
	StatsUC  usecase.StatsUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	vocab := skills.DefaultVocabulary()
	if cfg.Tailor.VocabFile != "" {
		v, err := skills.LoadVocabulary(cfg.Tailor.VocabFile)
		if err != nil {
			return nil, err
		}
		vocab = v
	}
	matcher := skills.NewMatcher(vocab)

	analyzer := job.NewAnalyzer(matcher)
	parser := resume.NewParser(matcher)
	scorer := scoring.NewEngine(matcher)
	engine := tailoring.NewEngine()

	if cfg.Tailor.GeminiAPIKey != "" {
		gen, err := llm.NewGeminiGenerator(context.Background(), cfg.Tailor.GeminiAPIKey)
		if err != nil {
			logger.Printf("[App] Gemini unavailable, rule-based tailoring only: %v", err)
		} else if gen != nil {
			c.Generator = gen
		}
	}

	redisStats := store.NewRedisStats(logger, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password)
	if redisStats.Available() {
		c.RedisStats = redisStats
		c.Stats = redisStats
	} else {
		c.Stats = store.NewMemoryStats()
	}

	if cfg.Database.DBHost != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			logger.Printf("[App] database unavailable, tailoring history disabled: %v", err)
		} else {
			c.DB = db
			repo := repository.NewPostgresHistoryRepository(db)
			schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := repo.EnsureSchema(schemaCtx); err != nil {
				logger.Printf("[App] history schema setup failed: %v", err)
			} else {
				c.History = repo
			}
			schemaCancel()
		}
	}

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	postingFetcher := fetcher.NewJobPostingFetcher(logger)
	renderer := render.NewChromedpRenderer(cfg.Tailor.ChromePath)

	c.ResumeUC = usecase.NewResumeUsecase(parser)
	c.JobUC = usecase.NewJobUsecase(analyzer, postingFetcher, logger)
	c.TailorUC = usecase.NewTailorUsecase(analyzer, scorer, engine, c.Generator, c.Stats, c.History, logger)
	c.PDFUC = usecase.NewPDFUsecase(renderer, cfg.Tailor.OutputDir, logger)
	c.StatsUC = usecase.NewStatsUsecase(c.Stats, c.History)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.RedisStats != nil {
		_ = c.RedisStats.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
