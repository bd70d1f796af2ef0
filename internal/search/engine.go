package search

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khanglvm/toolbox-search/internal/catalog"
)

// Engine runs searches over a catalog. It holds configuration only and is
// safe to share between goroutines.
type Engine struct {
	config ScoringConfig
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = zap.NewNop()
		}
		e.logger = logger
	}
}

// WithScoringConfig replaces the default scoring configuration. Zero-valued
// fields fall back to the defaults.
func WithScoringConfig(cfg ScoringConfig) Option {
	return func(e *Engine) {
		cfg.ApplyDefaults()
		e.config = cfg
	}
}

// NewEngine creates an engine with the default scoring configuration.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		config: DefaultScoringConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's scoring configuration.
func (e *Engine) Config() ScoringConfig {
	return e.config
}

// Search returns the items of cat matching query, best first.
//
// Each item is checked field by field (name, description, category, tags).
// If no field matches, the whole record is tried against the looser
// fallback threshold. Only the best-scoring candidate per item survives;
// on a tie the earlier field wins. Items failing filters are dropped,
// the rest are sorted (by relevance unless filters.SortBy is set) and
// finally truncated to filters.MaxResults.
func (e *Engine) Search(cat *catalog.Catalog, query string, filters *Filters) Results {
	start := time.Now()

	query = strings.TrimSpace(query)
	if query == "" || cat == nil {
		return Results{}
	}

	results := make(Results, 0)
	for i := range cat.Items {
		item := &cat.Items[i]
		if !Passes(item, filters) {
			continue
		}
		if best, ok := e.bestMatch(cat, item, query); ok {
			results = append(results, best)
		}
	}

	mode := SortRelevance
	if filters != nil && filters.SortBy != "" {
		mode = filters.SortBy
	}
	Sort(results, mode)

	if filters != nil && filters.MaxResults > 0 && len(results) > filters.MaxResults {
		results = results[:filters.MaxResults]
	}

	e.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
		zap.String("sort", string(mode)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results
}

// bestMatch evaluates item's fields in priority order and returns the
// highest-scoring candidate. Later candidates replace the current best only
// with a strictly greater score.
func (e *Engine) bestMatch(cat *catalog.Catalog, item *catalog.Item, query string) (Result, bool) {
	var best Result
	found := false

	consider := func(field Field, content string, matchType MatchType) {
		score := e.config.Score(query, content, field)
		if found && score <= best.RelevanceScore {
			return
		}
		best = Result{
			Item:           item,
			RelevanceScore: score,
			MatchType:      matchType,
			MatchedFields:  []Field{field},
		}
		found = true
	}

	threshold := e.config.MatchThreshold

	if IsMatch(query, item.Name, threshold) {
		matchType := MatchPartial
		if strings.EqualFold(item.Name, query) {
			matchType = MatchExact
		}
		consider(FieldName, item.Name, matchType)
	}

	if IsMatch(query, item.Description, threshold) {
		consider(FieldDescription, item.Description, MatchPartial)
	}

	categoryName := cat.CategoryName(item.Category)
	if IsMatch(query, categoryName, threshold) {
		consider(FieldCategory, categoryName, MatchCategory)
	}

	tags := strings.Join(item.Tags, " ")
	for _, tag := range item.Tags {
		if IsMatch(query, tag, threshold) {
			consider(FieldTags, tags, MatchTag)
			break
		}
	}

	if found {
		return best, true
	}

	content := item.Name + " " + item.Description + " " + categoryName + " " + tags
	if IsMatch(query, content, e.config.FallbackThreshold) {
		consider(FieldFuzzy, content, MatchFuzzy)
	}

	return best, found
}

// SearchByCategory returns the items whose category id equals categoryID,
// in catalog order.
func SearchByCategory(categoryID string, items []catalog.Item) []*catalog.Item {
	out := make([]*catalog.Item, 0)
	for i := range items {
		if items[i].Category == categoryID {
			out = append(out, &items[i])
		}
	}
	return out
}

// SearchByTag returns the items carrying tag exactly, in catalog order.
func SearchByTag(tag string, items []catalog.Item) []*catalog.Item {
	out := make([]*catalog.Item, 0)
	for i := range items {
		if items[i].HasTag(tag) {
			out = append(out, &items[i])
		}
	}
	return out
}
