package analysis

import "github.com/prepstack/placement-prep/internal/types"

const (
	// offsetPerSkill is how much one confidence entry moves the final score.
	offsetPerSkill = 2

	scoreMin = 0
	scoreMax = 100
)

// Rescore computes the live readiness score from the immutable base score
// and the current confidence map: +2 per skill marked "know", -2 per skill
// marked "practice", clamped to [0,100]. Skills absent from the map
// contribute nothing. This is the single implementation used both for
// display and before persisting, so the stored finalScore can never drift
// from the formula.
func Rescore(baseScore int, confidenceMap map[string]string) int {
	offset := 0
	for _, value := range confidenceMap {
		switch value {
		case types.ConfidenceKnow:
			offset += offsetPerSkill
		case types.ConfidencePractice:
			offset -= offsetPerSkill
		}
	}

	score := baseScore + offset
	if score < scoreMin {
		score = scoreMin
	}
	if score > scoreMax {
		score = scoreMax
	}
	return score
}

// ToggleConfidence flips a skill's confidence in place: "know" becomes
// "practice", anything else (including untouched) becomes "know". Toggling
// twice restores the previous value, so the operation is reversible.
func ToggleConfidence(confidenceMap map[string]string, skill string) string {
	next := types.ConfidenceKnow
	if confidenceMap[skill] == types.ConfidenceKnow {
		next = types.ConfidencePractice
	}
	confidenceMap[skill] = next
	return next
}

// WeakSkills returns up to limit extracted skills the user has not marked
// as known, in category order. Used to suggest focus areas in reports.
func WeakSkills(record *types.AnalysisRecord, limit int) []string {
	var weak []string
	for _, skill := range record.ExtractedSkills.All() {
		if record.SkillConfidenceMap[skill] == types.ConfidenceKnow {
			continue
		}
		weak = append(weak, skill)
		if len(weak) == limit {
			break
		}
	}
	return weak
}
