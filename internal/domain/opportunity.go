package domain

import (
	"math"

	"solosuccess.app/api/internal/model"
)

// maxRawScore is the product of the highest impact, ease and timing weights (4×3×4).
const maxRawScore = 48

// Level thresholds on the 0..100 score.
const (
	HighPriorityThreshold   = 50
	MediumPriorityThreshold = 20
)

var impactWeight = map[model.Impact]float64{
	model.ImpactLow:      1,
	model.ImpactMedium:   2,
	model.ImpactHigh:     3,
	model.ImpactCritical: 4,
}

// Effort is inverted: cheap wins score higher.
var effortWeight = map[model.Effort]float64{
	model.EffortLow:    3,
	model.EffortMedium: 2,
	model.EffortHigh:   1,
}

var timingWeight = map[model.Timing]float64{
	model.TimingImmediate:  4,
	model.TimingShortTerm:  3,
	model.TimingMediumTerm: 2,
	model.TimingLongTerm:   1,
}

// PriorityScore combines the scoring inputs into a 0..100 integer.
// Unknown enum values weigh zero; confidence is clamped to [0,1].
func PriorityScore(confidence float64, impact model.Impact, effort model.Effort, timing model.Timing) int {
	if math.IsNaN(confidence) {
		confidence = 0
	}
	confidence = math.Min(math.Max(confidence, 0), 1)
	raw := confidence * impactWeight[impact] * effortWeight[effort] * timingWeight[timing]
	return int(math.Round(100 * raw / maxRawScore))
}

func Level(score int) model.PriorityLevel {
	switch {
	case score >= HighPriorityThreshold:
		return model.PriorityHigh
	case score >= MediumPriorityThreshold:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// Score fills PriorityScore and PriorityLevel from the opportunity's inputs.
func Score(o *model.Opportunity) {
	o.PriorityScore = PriorityScore(o.Confidence, o.Impact, o.Effort, o.Timing)
	o.PriorityLevel = Level(o.PriorityScore)
}

// AlertConfidence is the confidence assigned to opportunities derived from alerts.
const AlertConfidence = 0.6

// OpportunityFromAlert drafts an opportunity for a competitor alert. Louder alerts
// are treated as higher-impact and more time-sensitive.
func OpportunityFromAlert(alert *model.CompetitorAlert) model.Opportunity {
	o := model.Opportunity{
		UserID:          alert.UserID,
		CompetitorID:    &alert.CompetitorID,
		AlertID:         &alert.ID,
		Title:           "Respond to: " + alert.Title,
		Description:     alert.Description,
		OpportunityType: alert.AlertType,
		Confidence:      AlertConfidence,
		Effort:          model.EffortMedium,
		Status:          model.OpportunityIdentified,
	}

	switch alert.Severity {
	case model.SeverityUrgent:
		o.Impact, o.Timing = model.ImpactHigh, model.TimingImmediate
	case model.SeverityWarning:
		o.Impact, o.Timing = model.ImpactMedium, model.TimingShortTerm
	default:
		o.Impact, o.Timing = model.ImpactLow, model.TimingMediumTerm
	}

	Score(&o)
	return o
}
