package main

import (
	"fmt"
	"log"

	"freightaudit/internal/audit"
	"freightaudit/internal/config"
	"freightaudit/internal/email/noop"
	"freightaudit/internal/email/ses"
	"freightaudit/internal/extract"
	"freightaudit/internal/extract/claude"
	"freightaudit/internal/extract/gemini"
	"freightaudit/internal/handler"
	"freightaudit/internal/port"
	"freightaudit/internal/provider"
	"freightaudit/internal/repository/postgres"
	"freightaudit/internal/router"
	"freightaudit/internal/service"
	s3storage "freightaudit/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	registerExtractors()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	contractRepo := postgres.NewContractRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize extractors
	extractor, headerMapper, err := buildExtractors(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractors: %w", err)
	}

	// Initialize notifier
	notifier, err := buildNotifier(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}

	// Initialize services
	auditSvc := service.NewAuditService(audit.NewEngine(), provider.NewClassifier(), contractRepo, notifier, &cfg.Email)
	contractSvc := service.NewContractService(contractRepo, s3Client, extractor, &cfg.S3)

	// Initialize handlers
	auditH := handler.NewAuditHandler(auditSvc)
	contractH := handler.NewContractHandler(contractSvc)
	headerH := handler.NewHeaderHandler(headerMapper)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, auditH, contractH, headerH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// registerExtractors wires the extractor provider factories into the registry.
func registerExtractors() {
	extract.RegisterProvider("gemini", func(cfg *config.ExtractorProviderConfig) (port.RateCardExtractor, error) {
		return gemini.NewExtractor(cfg), nil
	})
	extract.RegisterProvider("claude", func(cfg *config.ExtractorProviderConfig) (port.RateCardExtractor, error) {
		return claude.NewExtractor(cfg), nil
	})
}

// buildExtractors creates the rate-card extractor chain (primary with
// optional fallback) and the header mapper. Header mapping always goes
// through Gemini; the primary extractor serves it when it supports the
// interface.
func buildExtractors(cfg *config.ExtractorConfig) (port.RateCardExtractor, port.HeaderMapper, error) {
	primary, err := extract.NewExtractor(&cfg.Primary)
	if err != nil {
		return nil, nil, err
	}

	extractor := primary
	if secondary := cfg.SecondaryConfig(); secondary != nil {
		fallback, err := extract.NewExtractor(secondary)
		if err != nil {
			return nil, nil, err
		}
		extractor = extract.NewFallbackExtractor(
			[]port.RateCardExtractor{primary, fallback},
			[]string{cfg.Primary.Provider, secondary.Provider},
		)
	}

	headerMapper, ok := primary.(port.HeaderMapper)
	if !ok {
		gcfg := &cfg.Primary
		if s := cfg.SecondaryConfig(); s != nil && s.Provider == "gemini" {
			gcfg = s
		}
		headerMapper = gemini.NewExtractor(gcfg)
	}
	return extractor, headerMapper, nil
}

func buildNotifier(cfg *config.EmailConfig) (port.AuditNotifier, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewNotifier(cfg)
	default:
		return noop.NewNotifier(), nil
	}
}
