package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Balamathias/glafrica/internal/entity"
	"github.com/Balamathias/glafrica/internal/repository/contract"
	"github.com/Balamathias/glafrica/pkg/llm"
)

const (
	// Candidate rendering limits. The model only ever sees a handful of
	// items per catalog; retrieval already ordered them by relevance.
	maxCandidates    = 5
	descriptionLimit = 150
	maxTags          = 3

	// historyWindow caps how many prior turns are replayed to the model.
	historyWindow = 20

	summaryTTL          = 5 * time.Minute
	livestockSummaryKey = "summary:livestock"
	eggSummaryKey       = "summary:eggs"
)

const persona = "You are the Green Livestock Africa AI Assistant, a helpful and " +
	"knowledgeable guide for buyers on a Nigerian livestock and egg marketplace. " +
	"You help customers find animals and egg products, explain freshness and " +
	"pricing, and answer questions about what is in stock."

// Builder assembles the system prompt and message list for one chat turn.
// Inventory summaries come from the repositories through a short-lived cache
// so every turn does not re-aggregate both catalogs.
type Builder struct {
	livestockRepo contract.LivestockRepository
	eggRepo       contract.EggRepository
	cache         *gocache.Cache
}

func NewBuilder(livestockRepo contract.LivestockRepository, eggRepo contract.EggRepository) *Builder {
	return &Builder{
		livestockRepo: livestockRepo,
		eggRepo:       eggRepo,
		cache:         gocache.New(summaryTTL, 2*summaryTTL),
	}
}

// BuildSystemPrompt renders the persona, a catalog overview, and the matched
// candidates for this turn. A failed summary query degrades to omitting the
// overview; the candidates are what actually ground the answer.
func (b *Builder) BuildSystemPrompt(ctx context.Context, livestock []*entity.Livestock, eggs []*entity.Egg) string {
	var prompt strings.Builder

	prompt.WriteString(persona)
	prompt.WriteString("\n\n")

	b.writeInventoryOverview(ctx, &prompt)
	b.writeLivestockCandidates(&prompt, livestock)
	b.writeEggCandidates(&prompt, eggs)
	b.writeGuidelines(&prompt)

	return prompt.String()
}

// BuildMessages produces the full conversation for the provider: system
// prompt first, then the most recent turns, then the new user message.
func (b *Builder) BuildMessages(systemPrompt string, history []llm.Message, userMessage string) []llm.Message {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})
	return messages
}

func (b *Builder) writeInventoryOverview(ctx context.Context, prompt *strings.Builder) {
	livestockSummary := b.summarize(ctx, livestockSummaryKey, b.livestockRepo.Summarize)
	eggSummary := b.summarize(ctx, eggSummaryKey, b.eggRepo.Summarize)
	if livestockSummary == nil && eggSummary == nil {
		return
	}

	prompt.WriteString("<inventory_overview>\n")
	if livestockSummary != nil {
		writeSummaryLine(prompt, "Livestock", livestockSummary)
	}
	if eggSummary != nil {
		writeSummaryLine(prompt, "Egg products", eggSummary)
	}
	prompt.WriteString("</inventory_overview>\n\n")
}

func writeSummaryLine(prompt *strings.Builder, label string, s *entity.InventorySummary) {
	fmt.Fprintf(prompt, "%s: %d available", label, s.Count)
	if s.Count > 0 {
		fmt.Fprintf(prompt, ", prices NGN %.0f to NGN %.0f", s.MinPrice, s.MaxPrice)
		if len(s.Breeds) > 0 {
			fmt.Fprintf(prompt, ", breeds include %s", strings.Join(s.Breeds, ", "))
		}
	}
	prompt.WriteString("\n")
}

func (b *Builder) summarize(ctx context.Context, key string, fn func(context.Context) (*entity.InventorySummary, error)) *entity.InventorySummary {
	if cached, found := b.cache.Get(key); found {
		return cached.(*entity.InventorySummary)
	}
	summary, err := fn(ctx)
	if err != nil {
		return nil
	}
	b.cache.Set(key, summary, gocache.DefaultExpiration)
	return summary
}

func (b *Builder) writeLivestockCandidates(prompt *strings.Builder, items []*entity.Livestock) {
	if len(items) == 0 {
		return
	}
	if len(items) > maxCandidates {
		items = items[:maxCandidates]
	}

	prompt.WriteString("<matched_livestock>\n")
	for i, item := range items {
		fmt.Fprintf(prompt, "%d. %s", i+1, item.Name)
		if item.Breed != "" {
			fmt.Fprintf(prompt, " (%s)", item.Breed)
		}
		if item.CategoryName != "" {
			fmt.Fprintf(prompt, " - %s", item.CategoryName)
		}
		prompt.WriteString("\n")

		fmt.Fprintf(prompt, "   Price: %s %.2f", currencyOr(item.Currency), item.Price)
		if item.Gender != "" {
			fmt.Fprintf(prompt, " | Gender: %s", item.Gender)
		}
		if item.Age != "" {
			fmt.Fprintf(prompt, " | Age: %s", item.Age)
		}
		if item.Location != "" {
			fmt.Fprintf(prompt, " | Location: %s", item.Location)
		}
		prompt.WriteString("\n")

		if item.HealthStatus != "" {
			fmt.Fprintf(prompt, "   Health: %s\n", item.HealthStatus)
		}
		if desc := truncate(item.Description, descriptionLimit); desc != "" {
			fmt.Fprintf(prompt, "   %s\n", desc)
		}
		writeTags(prompt, item.Tags)
	}
	prompt.WriteString("</matched_livestock>\n\n")
}

func (b *Builder) writeEggCandidates(prompt *strings.Builder, items []*entity.Egg) {
	if len(items) == 0 {
		return
	}
	if len(items) > maxCandidates {
		items = items[:maxCandidates]
	}

	prompt.WriteString("<matched_eggs>\n")
	for i, item := range items {
		fmt.Fprintf(prompt, "%d. %s", i+1, item.Name)
		if item.CategoryName != "" {
			fmt.Fprintf(prompt, " - %s", item.CategoryName)
		}
		prompt.WriteString("\n")

		fmt.Fprintf(prompt, "   Price: %s %.2f", currencyOr(item.Currency), item.Price)
		if item.Packaging != "" {
			fmt.Fprintf(prompt, " per %s", item.Packaging)
		}
		if item.Size != "" {
			fmt.Fprintf(prompt, " | Size: %s", item.Size)
		}
		if item.Location != "" {
			fmt.Fprintf(prompt, " | Location: %s", item.Location)
		}
		prompt.WriteString("\n")

		fmt.Fprintf(prompt, "   Freshness: %s", item.Freshness.Status)
		if item.Freshness.FreshPercentage != nil {
			fmt.Fprintf(prompt, " (%d%% shelf life remaining)", *item.Freshness.FreshPercentage)
		}
		prompt.WriteString("\n")

		if desc := truncate(item.Description, descriptionLimit); desc != "" {
			fmt.Fprintf(prompt, "   %s\n", desc)
		}
		writeTags(prompt, item.Tags)
	}
	prompt.WriteString("</matched_eggs>\n\n")
}

func (b *Builder) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. Recommend only items listed above. Never invent stock, prices, or availability.\n")
	prompt.WriteString("2. Quote prices in NGN (Nigerian Naira) exactly as listed.\n")
	prompt.WriteString("3. Mention freshness when discussing eggs, and flag anything expiring soon.\n")
	prompt.WriteString("4. If nothing above fits the request, say so and suggest the closest match.\n")
	prompt.WriteString("5. Keep answers friendly and concise. For purchases, direct the buyer to the listing.\n")
	prompt.WriteString("</guidelines>")
}

func writeTags(prompt *strings.Builder, tags []string) {
	if len(tags) == 0 {
		return
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	fmt.Fprintf(prompt, "   Tags: %s\n", strings.Join(tags, ", "))
}

// truncate cuts on a rune boundary so a multi-byte character straddling the
// limit never leaves invalid UTF-8 in the prompt.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func currencyOr(currency string) string {
	if currency == "" {
		return "NGN"
	}
	return currency
}
