package stress

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinimumLevel is the lowest accepted stress level.
	MinimumLevel = 1
	// MaximumLevel is the highest accepted stress level.
	MaximumLevel = 10
	// DefaultLevel is the level a new session starts with.
	DefaultLevel = 3

	mediumTierThresholdConstant = 4
	highTierThresholdConstant   = 7

	tierLowStringConstant    = "low"
	tierMediumStringConstant = "medium"
	tierHighStringConstant   = "high"

	invalidArgumentMessageConstant       = "invalid argument"
	levelOutOfRangeErrorTemplateConstant = "stress level %d outside [%d,%d]: %w"
	unknownTierErrorTemplateConstant     = "unknown stress tier %q: %w"

	lowStatusMessageConstant    = "Low stress. All features available."
	mediumStatusMessageConstant = "Moderate stress. Some features hidden for clarity."
	highStatusMessageConstant   = "High stress detected. UI simplified for focus."
)

// ErrInvalidArgument indicates a stress level or tier outside the accepted domain.
var ErrInvalidArgument = errors.New(invalidArgumentMessageConstant)

// Tier enumerates UI-density tiers derived from a stress level.
type Tier int

// Supported tiers ordered by severity.
const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

var tierNames = map[Tier]string{
	TierLow:    tierLowStringConstant,
	TierMedium: tierMediumStringConstant,
	TierHigh:   tierHighStringConstant,
}

var tierStatusMessages = map[Tier]string{
	TierLow:    lowStatusMessageConstant,
	TierMedium: mediumStatusMessageConstant,
	TierHigh:   highStatusMessageConstant,
}

// String returns the lowercase tier name.
func (tier Tier) String() string {
	if name, exists := tierNames[tier]; exists {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(tier))
}

// MarshalText renders the tier name for YAML and JSON encoders.
func (tier Tier) MarshalText() ([]byte, error) {
	return []byte(tier.String()), nil
}

// Tiers lists every tier from least to most severe.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// ValidateLevel reports ErrInvalidArgument when level lies outside [MinimumLevel, MaximumLevel].
func ValidateLevel(level int) error {
	if level < MinimumLevel || level > MaximumLevel {
		return fmt.Errorf(levelOutOfRangeErrorTemplateConstant, level, MinimumLevel, MaximumLevel, ErrInvalidArgument)
	}
	return nil
}

// Classify maps a stress level onto its tier. Levels outside [1,10] are rejected rather than clamped.
func Classify(level int) (Tier, error) {
	if validationError := ValidateLevel(level); validationError != nil {
		return TierLow, validationError
	}

	switch {
	case level >= highTierThresholdConstant:
		return TierHigh, nil
	case level >= mediumTierThresholdConstant:
		return TierMedium, nil
	default:
		return TierLow, nil
	}
}

// ParseTier converts a tier name back into a Tier.
func ParseTier(name string) (Tier, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for tier, tierName := range tierNames {
		if tierName == normalized {
			return tier, nil
		}
	}
	return TierLow, fmt.Errorf(unknownTierErrorTemplateConstant, name, ErrInvalidArgument)
}

// StatusMessage returns the one-line stress status shown beside the level control.
func StatusMessage(tier Tier) string {
	return tierStatusMessages[tier]
}
