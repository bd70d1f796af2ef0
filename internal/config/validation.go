package config

import (
	"errors"
	"fmt"
)

// Validate checks value ranges. Zero values are allowed and mean "use the default".
func Validate(cfg *Config) error {
	var errs []error

	if s := cfg.Scoring; s != nil {
		if s.MatchThreshold < 0 || s.MatchThreshold > 1 {
			errs = append(errs, fmt.Errorf("scoring.matchThreshold must be within [0, 1], got %v", s.MatchThreshold))
		}
		if s.FallbackThreshold < 0 || s.FallbackThreshold > 1 {
			errs = append(errs, fmt.Errorf("scoring.fallbackThreshold must be within [0, 1], got %v", s.FallbackThreshold))
		}
		if s.LengthPenaltyCutoff < 0 {
			errs = append(errs, fmt.Errorf("scoring.lengthPenaltyCutoff must not be negative, got %d", s.LengthPenaltyCutoff))
		}
		if s.LengthPenaltyFactor < 0 {
			errs = append(errs, fmt.Errorf("scoring.lengthPenaltyFactor must not be negative, got %v", s.LengthPenaltyFactor))
		}
		for field, w := range s.FieldWeights {
			if w < 0 {
				errs = append(errs, fmt.Errorf("scoring.fieldWeights.%s must not be negative, got %v", field, w))
			}
		}
	}

	if s := cfg.Settings; s != nil {
		if s.MaxResults < 0 {
			errs = append(errs, fmt.Errorf("settings.maxResults must not be negative, got %d", s.MaxResults))
		}
		if s.SuggestionLimit < 0 {
			errs = append(errs, fmt.Errorf("settings.suggestionLimit must not be negative, got %d", s.SuggestionLimit))
		}
		if s.RetentionDays < 0 {
			errs = append(errs, fmt.Errorf("settings.retentionDays must not be negative, got %d", s.RetentionDays))
		}
	}

	return errors.Join(errs...)
}
