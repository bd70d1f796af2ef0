package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cfg := DefaultScoringConfig()

	tests := []struct {
		name    string
		query   string
		content string
		field   Field
		want    float64
	}{
		{"prefix phrase in name", "emi", "EMI Calculator", FieldName, 600},
		{"inner word in name", "calculator", "EMI Calculator", FieldName, 390},
		{"two words in description", "loan emi", "Calculate monthly loan EMI", FieldDescription, 160},
		{"category weight", "media", "Media", FieldCategory, 400},
		{"tags weight", "crop", "image crop", FieldTags, 195},
		{"fuzzy weight", "ab xd", "ab cd  ", FieldFuzzy, 25},
		{"unknown field weighs one", "x", "x", Field("other"), 200},
		{"no overlap", "zebra", "Image Cropper", FieldName, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cfg.Score(tt.query, tt.content, tt.field), 1e-9)
		})
	}
}

func TestScore_LengthPenalty(t *testing.T) {
	cfg := DefaultScoringConfig()

	atCutoff := "crop" + strings.Repeat("a", 196)
	overCutoff := "crop" + strings.Repeat("a", 197)

	assert.InDelta(t, 200, cfg.Score("crop", atCutoff, FieldDescription), 1e-9)
	assert.InDelta(t, 160, cfg.Score("crop", overCutoff, FieldDescription), 1e-9)
}

func TestScore_AdditionalWordNeverDecreases(t *testing.T) {
	cfg := DefaultScoringConfig()
	query := "image crop resize"

	base := cfg.Score(query, "image editor", FieldDescription)
	more := cfg.Score(query, "image crop editor", FieldDescription)
	most := cfg.Score(query, "image crop resize editor", FieldDescription)

	assert.GreaterOrEqual(t, more, base)
	assert.GreaterOrEqual(t, most, more)
}

func TestScoringConfig_ApplyDefaults(t *testing.T) {
	cfg := ScoringConfig{
		FieldWeights: map[Field]float64{FieldName: 10},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultMatchThreshold, cfg.MatchThreshold)
	assert.Equal(t, DefaultFallbackThreshold, cfg.FallbackThreshold)
	assert.Equal(t, DefaultLengthPenaltyCutoff, cfg.LengthPenaltyCutoff)
	assert.Equal(t, DefaultLengthPenaltyFactor, cfg.LengthPenaltyFactor)
	assert.Equal(t, 10.0, cfg.Weight(FieldName))
	assert.Equal(t, 1.0, cfg.Weight(FieldDescription))
	assert.Equal(t, 0.5, cfg.Weight(FieldFuzzy))
}

func TestScore_InjectedConfig(t *testing.T) {
	cfg := ScoringConfig{
		FieldWeights:        map[Field]float64{FieldName: 1},
		LengthPenaltyCutoff: 5,
		LengthPenaltyFactor: 0.5,
	}
	cfg.ApplyDefaults()

	// (100 + 50 + 30 + 20) * 1 * 0.5
	assert.InDelta(t, 100, cfg.Score("image", "Image Cropper", FieldName), 1e-9)
}
