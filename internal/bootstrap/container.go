package bootstrap

import (
	"robotics-rag-be/internal/config"
	"robotics-rag-be/internal/controller"
	"robotics-rag-be/internal/pkg/logger"
	"robotics-rag-be/internal/repository/memory"
	"robotics-rag-be/internal/service"
	"robotics-rag-be/pkg/embedding"
	"robotics-rag-be/pkg/llm/openai"
	"robotics-rag-be/pkg/rag"
	"robotics-rag-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RagController     controller.IRagController
	ContentController controller.IContentController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	IndexerService service.IIndexerService

	// Exposed for startup collection bootstrap and middleware
	RagService service.IRagService
	SysLogger  logger.ILogger
}

// NewContainer wires all dependencies explicitly. Nothing is a process-wide
// singleton; everything is constructed here and passed down.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.Provider = embedding.NewOpenAIProvider(
		cfg.Keys.OpenAI,
		cfg.Keys.OpenAIBaseURL,
		cfg.Rag.EmbeddingModel,
		cfg.Rag.EmbeddingDimensions,
	)
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider)

	llmProvider := openai.NewOpenAIProvider(
		cfg.Keys.OpenAI,
		cfg.Keys.OpenAIBaseURL,
		cfg.Rag.CompletionModel,
	)

	store := vectorstore.NewPostgresStore(db)

	// 4. RAG Pipeline
	retriever := rag.NewRetriever(embeddingProvider, store, cfg.Rag.Collection)
	synthesizer := rag.NewSynthesizer(llmProvider, rag.SynthesizerConfig{
		Model:       cfg.Rag.CompletionModel,
		MaxTokens:   cfg.Rag.MaxTokens,
		Temperature: cfg.Rag.Temperature,
	})

	// 5. Services
	ragService := service.NewRagService(retriever, synthesizer, embeddingProvider, store, cfg.Rag, sysLogger)

	passageRepo := memory.NewPassageRepository()
	publisherService := service.NewPublisherService(cfg.Rag.IndexTopicName, pubSub)
	indexerService := service.NewIndexerService(pubSub, cfg.Rag.IndexTopicName, passageRepo, ragService, sysLogger)
	contentService := service.NewContentService(passageRepo, publisherService, ragService)

	// 6. Controllers
	ragController := controller.NewRagController(ragService)
	contentController := controller.NewContentController(contentService)
	healthController := controller.NewHealthController()

	return &Container{
		RagController:     ragController,
		ContentController: contentController,
		HealthController:  healthController,
		IndexerService:    indexerService,
		RagService:        ragService,
		SysLogger:         sysLogger,
	}
}
