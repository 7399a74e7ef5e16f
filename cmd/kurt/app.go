package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kurt-labs/kurt/pkg/cms"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/database"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/events"
	"github.com/kurt-labs/kurt/pkg/fetch"
	"github.com/kurt-labs/kurt/pkg/index"
	"github.com/kurt-labs/kurt/pkg/llm"
	"github.com/kurt-labs/kurt/pkg/mapper"
	"github.com/kurt-labs/kurt/pkg/services"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// app holds everything a command needs after bootstrap: configuration,
// database, the tool registry, and the workflow runtime.
type app struct {
	cfg      *config.Config
	db       *database.Client
	dbConfig database.Config

	registry  *workflow.Registry
	workflows *workflow.WorkflowRegistry
	publisher *events.Publisher
	runtime   *workflow.Runtime

	llm      *llm.Client
	embedder embedding.Provider
	cmsReg   *cms.Registry
	store    *fetch.Store

	eventService *services.EventService

	podID string
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// newApp loads configuration, connects the database, and wires the tool
// registry and runtime.
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Initialize(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("initializing configuration: %w", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading database config: %w", err)
	}
	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing LLM client: %w", err)
	}
	embedder := embedding.NewFromConfig(cfg.Embedding)
	if embedder == nil {
		slog.Warn("No embedding API key configured, embeddings disabled")
	}

	cmsRegistry := cms.NewRegistry(cfg.CMS, cms.NewSanity(), cms.NewContentful())
	store := fetch.NewStore(cfg.Paths.Sources)

	registry := workflow.NewRegistry()
	registry.Register(mapper.NewTool(db.Client,
		mapper.NewSitemapSource(),
		mapper.NewCrawlSource(),
		mapper.NewFolderSource(),
		mapper.NewCMSSource(cmsRegistry),
		mapper.NewManualSource(),
	))
	registry.Register(fetch.NewTool(db.Client, store, cfg.Fetch, embedder, cmsRegistry))
	registry.Register(index.NewSectionTool(db.Client, store, llmClient, embedder, cfg))
	registry.Register(index.NewEntityTool(db.Client, embedder, cfg))
	registry.Register(index.NewClusterTool(db.Client, embedder, cfg))
	registry.Register(index.NewResolveTool(db.Client, embedder, cfg))

	workflows := workflow.NewWorkflowRegistry()
	registerBuiltinWorkflows(workflows)

	podID := resolvePodID()
	publisher := events.NewPublisher(db.DB())
	runner := workflow.NewRunner(db.Client, registry, workflows, publisher, workflow.DefaultRunnerConfig())
	runtime := workflow.NewRuntime(db.Client, runner, workflows, registry, publisher, podID)

	return &app{
		cfg:          cfg,
		db:           db,
		dbConfig:     dbConfig,
		registry:     registry,
		workflows:    workflows,
		publisher:    publisher,
		runtime:      runtime,
		llm:          llmClient,
		embedder:     embedder,
		cmsReg:       cmsRegistry,
		store:        store,
		eventService: services.NewEventService(db.Client),
		podID:        podID,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}
