package di

import (
	"context"
	"fmt"
	"os"

	"mindcare/backend/internal/service"
	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/cache"
	"mindcare/backend/pkg/classifier"
	"mindcare/backend/pkg/config"
	"mindcare/backend/pkg/logger"
	"mindcare/backend/pkg/notify"
	"mindcare/backend/pkg/resources"
	"mindcare/backend/pkg/responder"
	"mindcare/backend/pkg/rules"
	"mindcare/backend/pkg/secrets"
	"mindcare/backend/pkg/sentiment"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Store  store.EventStore
	Rules  *rules.Ruleset

	ChatService      *service.ChatService
	MoodService      *service.MoodService
	PointsService    *service.PointsService
	ResourceService  *service.ResourceService
	DashboardService *service.DashboardService

	Notifier notify.Notifier
}

// New creates a new dependency injection container
func New(db *gorm.DB, log *logger.Logger) (*Container, error) {
	cfg := config.Get()

	// Secrets (Vault opt-in, env fallback)
	if err := secrets.Init(log); err != nil {
		return nil, fmt.Errorf("failed to initialize secrets manager: %w", err)
	}

	// Event store
	eventStore := store.NewGormStore(db)
	if err := eventStore.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate event store: %w", err)
	}

	// Rule tables: file when present, built-in defaults otherwise
	ruleset, err := loadRules(cfg, log)
	if err != nil {
		return nil, err
	}

	// Resource directory
	directory, err := resources.Load(cfg.Resources.DirectoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load resource directory: %w", err)
	}
	resolver := resources.NewResolver(directory, resources.ResolverOptions{
		DefaultCountry:   cfg.Resources.DefaultCountry,
		SecondaryCountry: cfg.Resources.SecondaryCountry,
		Deduplicate:      cfg.Resources.Deduplicate,
	})

	// Pipeline components
	scorer := sentiment.NewVaderScorer(log)
	cls := classifier.New(ruleset.CrisisKeywords, cfg.Classifier.CrisisThreshold)
	selector := responder.NewSelector(ruleset)

	// Generative responder is optional; without a key the rule-based replies
	// carry the whole conversation.
	var generator responder.Generator
	if cfg.Responder.Enabled {
		apiKey := secrets.GetSecretWithDefault(context.Background(), secrets.KeyOpenAIAPIKey, "")
		if apiKey != "" {
			generator = responder.NewOpenAIGenerator(responder.OpenAIConfig{
				APIKey:      apiKey,
				Model:       cfg.Responder.Model,
				MaxTokens:   cfg.Responder.MaxTokens,
				Temperature: cfg.Responder.Temperature,
				Timeout:     cfg.Responder.Timeout,
			}, ruleset)
			log.Info("generative responder enabled", "model", cfg.Responder.Model)
		} else {
			log.Info("no responder API key configured, using rule-based replies")
		}
	}

	// Outbound alerts are optional as well
	var notifier notify.Notifier
	if cfg.SMTP.Host != "" {
		password := secrets.GetSecretWithDefault(context.Background(), secrets.KeySMTPPassword, "")
		notifier = notify.NewEmailNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, password, cfg.SMTP.From)
	}

	var resolveCache *cache.Cache
	if cfg.Cache.Enabled {
		resolveCache = cache.NewCache()
	}

	return &Container{
		DB:               db,
		Logger:           log,
		Store:            eventStore,
		Rules:            ruleset,
		ChatService:      service.NewChatService(eventStore, scorer, cls, selector, generator, log),
		MoodService:      service.NewMoodService(eventStore),
		PointsService:    service.NewPointsService(eventStore),
		ResourceService:  service.NewResourceService(resolver, resolveCache),
		DashboardService: service.NewDashboardService(eventStore, cfg.History.DashboardChatWindow),
		Notifier:         notifier,
	}, nil
}

func loadRules(cfg *config.Config, log *logger.Logger) (*rules.Ruleset, error) {
	if _, err := os.Stat(cfg.Classifier.RulesPath); os.IsNotExist(err) {
		log.Info("rules file not found, using built-in rule table", "path", cfg.Classifier.RulesPath)
		return rules.Default(), nil
	}

	ruleset, err := rules.Load(cfg.Classifier.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return ruleset, nil
}
