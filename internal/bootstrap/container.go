package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"github.com/Balamathias/glafrica/internal/config"
	"github.com/Balamathias/glafrica/internal/controller"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/internal/repository/implementation"
	"github.com/Balamathias/glafrica/internal/service"
	"github.com/Balamathias/glafrica/pkg/llm/factory"
	"github.com/Balamathias/glafrica/pkg/rag/prompt"
	"github.com/Balamathias/glafrica/pkg/rag/response"
	"github.com/Balamathias/glafrica/pkg/retrieval"
	"github.com/Balamathias/glafrica/pkg/search"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController
	ChatController   controller.IChatController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories
	livestockRepo := implementation.NewLivestockRepository(db)
	eggRepo := implementation.NewEggRepository(db)

	// 3. Query understanding
	extractor := search.NewExtractor(search.DefaultVocabulary())
	eggExtractor := search.NewEggExtractor(search.DefaultEggVocabulary())
	classifier := search.NewClassifier()

	// 4. Retrieval engines
	livestockEngine := retrieval.NewLivestockEngine(livestockRepo, sysLogger)
	eggEngine := retrieval.NewEggEngine(eggRepo, sysLogger)

	// 5. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
		cfg.Ai.RequestTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 6. RAG components
	promptBuilder := prompt.NewBuilder(livestockRepo, eggRepo)
	generator := response.NewGenerator(llmProvider, sysLogger)

	// 7. Services
	searchService := service.NewSearchService(
		extractor,
		eggExtractor,
		classifier,
		livestockEngine,
		eggEngine,
		sysLogger,
	)
	chatService := service.NewChatService(
		extractor,
		eggExtractor,
		classifier,
		livestockEngine,
		eggEngine,
		promptBuilder,
		generator,
		cfg.Ai,
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		ChatController:   controller.NewChatController(chatService, sysLogger),
		Logger:           sysLogger,
	}
}
