package service

import (
	"context"

	"github.com/Balamathias/glafrica/internal/config"
	"github.com/Balamathias/glafrica/internal/dto"
	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/pkg/llm"
	"github.com/Balamathias/glafrica/pkg/rag/prompt"
	"github.com/Balamathias/glafrica/pkg/rag/response"
	"github.com/Balamathias/glafrica/pkg/retrieval"
	"github.com/Balamathias/glafrica/pkg/search"
)

// candidateLimit caps retrieval for chat turns; only this many items per
// catalog ever reach the prompt.
const candidateLimit = 5

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	// ChatStream returns the reply as a chunk channel plus the number of
	// catalog items grounding it. The channel closes when the reply ends.
	ChatStream(ctx context.Context, req *dto.ChatRequest) (<-chan string, int, error)
}

type chatService struct {
	extractor    *search.Extractor
	eggExtractor *search.EggExtractor
	classifier   *search.Classifier
	livestock    *retrieval.LivestockEngine
	eggs         *retrieval.EggEngine
	prompts      *prompt.Builder
	generator    *response.Generator
	aiCfg        config.AIConfig
	logger       logger.ILogger
}

func NewChatService(
	extractor *search.Extractor,
	eggExtractor *search.EggExtractor,
	classifier *search.Classifier,
	livestock *retrieval.LivestockEngine,
	eggs *retrieval.EggEngine,
	prompts *prompt.Builder,
	generator *response.Generator,
	aiCfg config.AIConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		extractor:    extractor,
		eggExtractor: eggExtractor,
		classifier:   classifier,
		livestock:    livestock,
		eggs:         eggs,
		prompts:      prompts,
		generator:    generator,
		aiCfg:        aiCfg,
		logger:       log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	messages, contextCount := s.assemble(ctx, req)
	reply := s.generator.Generate(ctx, messages, s.options()...)

	return &dto.ChatResponse{
		Response:     reply,
		ContextCount: contextCount,
	}, nil
}

func (s *chatService) ChatStream(ctx context.Context, req *dto.ChatRequest) (<-chan string, int, error) {
	messages, contextCount := s.assemble(ctx, req)
	ch, err := s.generator.GenerateStream(ctx, messages, s.options()...)
	if err != nil {
		return nil, 0, err
	}
	return ch, contextCount, nil
}

// assemble retrieves candidates for the message and builds the full
// conversation. Retrieval failures degrade to an empty candidate list; the
// assistant can still answer from the inventory overview.
func (s *chatService) assemble(ctx context.Context, req *dto.ChatRequest) ([]llm.Message, int) {
	intent := s.classifier.Classify(req.Message)

	var livestock []*entity.Livestock
	var eggs []*entity.Egg

	if intent.SearchLivestock {
		criteria := s.extractor.Extract(req.Message)
		items, tier, err := s.livestock.Search(ctx, criteria, req.Message, candidateLimit)
		if err != nil {
			s.logger.Error("chat", "livestock retrieval failed", map[string]interface{}{"error": err.Error()})
		} else {
			livestock = items
			s.logger.Debug("chat", "livestock candidates", map[string]interface{}{
				"tier": string(tier), "count": len(items),
			})
		}
	}

	if intent.SearchEggs {
		criteria := s.eggExtractor.Extract(req.Message)
		items, tier, err := s.eggs.Search(ctx, criteria, req.Message, candidateLimit)
		if err != nil {
			s.logger.Error("chat", "egg retrieval failed", map[string]interface{}{"error": err.Error()})
		} else {
			eggs = items
			s.logger.Debug("chat", "egg candidates", map[string]interface{}{
				"tier": string(tier), "count": len(items),
			})
		}
	}

	systemPrompt := s.prompts.BuildSystemPrompt(ctx, livestock, eggs)
	messages := s.prompts.BuildMessages(systemPrompt, toLLMHistory(req.History), req.Message)

	return messages, len(livestock) + len(eggs)
}

func (s *chatService) options() []llm.Option {
	opts := []llm.Option{llm.WithTemperature(s.aiCfg.Temperature)}
	if s.aiCfg.MaxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(s.aiCfg.MaxTokens))
	}
	return opts
}

func toLLMHistory(turns []dto.ChatTurn) []llm.Message {
	history := make([]llm.Message, len(turns))
	for i, turn := range turns {
		history[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}
	return history
}
