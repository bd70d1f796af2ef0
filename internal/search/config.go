package search

// Scoring constants. The additive bonuses are fixed; thresholds, weights and
// the long-content penalty are tunable through ScoringConfig.
const (
	substringBonus  = 100.0
	prefixBonus     = 50.0
	wordBonus       = 30.0
	wordPrefixBonus = 20.0

	// DefaultMatchThreshold is the similarity required for a single-field match.
	DefaultMatchThreshold = 0.6

	// DefaultFallbackThreshold is the looser whole-record similarity.
	DefaultFallbackThreshold = 0.3

	// DefaultLengthPenaltyCutoff is the content length (in runes) above which
	// the long-content penalty applies.
	DefaultLengthPenaltyCutoff = 200

	// DefaultLengthPenaltyFactor multiplies scores of long content.
	DefaultLengthPenaltyFactor = 0.8
)

// ScoringConfig collects every tunable used by matching and scoring.
type ScoringConfig struct {
	MatchThreshold      float64           `json:"matchThreshold,omitempty"`
	FallbackThreshold   float64           `json:"fallbackThreshold,omitempty"`
	FieldWeights        map[Field]float64 `json:"fieldWeights,omitempty"`
	LengthPenaltyCutoff int               `json:"lengthPenaltyCutoff,omitempty"`
	LengthPenaltyFactor float64           `json:"lengthPenaltyFactor,omitempty"`
}

// DefaultFieldWeights returns a fresh copy of the built-in field weights.
func DefaultFieldWeights() map[Field]float64 {
	return map[Field]float64{
		FieldName:        3,
		FieldCategory:    2,
		FieldTags:        1.5,
		FieldDescription: 1,
		FieldFuzzy:       0.5,
	}
}

// DefaultScoringConfig returns the built-in scoring configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MatchThreshold:      DefaultMatchThreshold,
		FallbackThreshold:   DefaultFallbackThreshold,
		FieldWeights:        DefaultFieldWeights(),
		LengthPenaltyCutoff: DefaultLengthPenaltyCutoff,
		LengthPenaltyFactor: DefaultLengthPenaltyFactor,
	}
}

// ApplyDefaults fills zero-valued fields with the built-in defaults.
// Field weights that are set are kept; missing known fields get their default.
func (c *ScoringConfig) ApplyDefaults() {
	if c.MatchThreshold <= 0 {
		c.MatchThreshold = DefaultMatchThreshold
	}
	if c.FallbackThreshold <= 0 {
		c.FallbackThreshold = DefaultFallbackThreshold
	}
	if c.LengthPenaltyCutoff <= 0 {
		c.LengthPenaltyCutoff = DefaultLengthPenaltyCutoff
	}
	if c.LengthPenaltyFactor <= 0 {
		c.LengthPenaltyFactor = DefaultLengthPenaltyFactor
	}

	weights := make(map[Field]float64, len(c.FieldWeights))
	for field, w := range DefaultFieldWeights() {
		weights[field] = w
	}
	for field, w := range c.FieldWeights {
		weights[field] = w
	}
	c.FieldWeights = weights
}

// Weight returns the multiplier for field. Unknown fields weigh 1.
func (c ScoringConfig) Weight(field Field) float64 {
	if w, ok := c.FieldWeights[field]; ok {
		return w
	}
	return 1
}
