package stress

import "sort"

// AffordanceID names a piece of interface surface that can be hidden under stress.
type AffordanceID string

// Affordances gated by tier.
const (
	AffordanceNavigation      AffordanceID = "navigation"
	AffordanceSettings        AffordanceID = "settings"
	AffordanceChapterSubtitle AffordanceID = "chapter_subtitle"
	AffordanceKeyTakeaways    AffordanceID = "key_takeaways"
	AffordanceReadingControls AffordanceID = "reading_controls"
	AffordanceBionicToggle    AffordanceID = "bionic_toggle"
	AffordanceChatHint        AffordanceID = "chat_hint"
)

const (
	relaxedFontSizeConstant   = "1rem"
	relaxedLineHeightConstant = "1.7"
	focusedFontSizeConstant   = "1.125rem"
	focusedLineHeightConstant = "1.8"
)

// AffordanceSet is an unordered collection of visible affordances.
type AffordanceSet map[AffordanceID]struct{}

// Contains reports whether the affordance is present.
func (set AffordanceSet) Contains(affordance AffordanceID) bool {
	_, exists := set[affordance]
	return exists
}

// Sorted returns the affordances in lexical order.
func (set AffordanceSet) Sorted() []AffordanceID {
	sorted := make([]AffordanceID, 0, len(set))
	for affordance := range set {
		sorted = append(sorted, affordance)
	}
	sort.Slice(sorted, func(leftIndex int, rightIndex int) bool {
		return sorted[leftIndex] < sorted[rightIndex]
	})
	return sorted
}

// Typography describes the reading pane text metrics.
type Typography struct {
	FontSize   string `json:"font_size" yaml:"font_size"`
	LineHeight string `json:"line_height" yaml:"line_height"`
}

// AllAffordances lists every tier-gated affordance.
func AllAffordances() []AffordanceID {
	return []AffordanceID{
		AffordanceNavigation,
		AffordanceSettings,
		AffordanceChapterSubtitle,
		AffordanceKeyTakeaways,
		AffordanceReadingControls,
		AffordanceBionicToggle,
		AffordanceChatHint,
	}
}

// affordanceVisibility lists, per affordance, the tiers in which it is hidden.
var affordanceVisibility = map[AffordanceID]map[Tier]bool{
	AffordanceNavigation:      {TierHigh: true},
	AffordanceSettings:        {TierHigh: true},
	AffordanceChapterSubtitle: {TierHigh: true},
	AffordanceKeyTakeaways:    {TierHigh: true},
	AffordanceReadingControls: {TierHigh: true},
	AffordanceBionicToggle:    {TierHigh: true},
	AffordanceChatHint:        {TierHigh: true},
}

// VisibleAffordances returns the affordances a presentation layer should render for the tier.
func VisibleAffordances(tier Tier) AffordanceSet {
	visible := make(AffordanceSet, len(affordanceVisibility))
	for _, affordance := range AllAffordances() {
		if affordanceVisibility[affordance][tier] {
			continue
		}
		visible[affordance] = struct{}{}
	}
	return visible
}

// ReadingTypography returns the reading pane metrics. High stress gets larger, looser text.
func ReadingTypography(tier Tier) Typography {
	if tier == TierHigh {
		return Typography{FontSize: focusedFontSizeConstant, LineHeight: focusedLineHeightConstant}
	}
	return Typography{FontSize: relaxedFontSizeConstant, LineHeight: relaxedLineHeightConstant}
}
