package services

import (
	"math"
	"sort"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
)

// Ranker drops records violating hard constraints and scores the survivors
// with a weighted multi-criteria model.
type Ranker struct {
	weights config.ScoringConfig
}

func NewRanker(weights config.ScoringConfig) *Ranker {
	return &Ranker{weights: weights}
}

// Rank filters, scores and sorts. The sort is stable and descending, so ties
// keep the order the filter produced. No returned score is ever negative.
func (r *Ranker) Rank(records []models.Record, prefs models.Preferences) []models.Record {
	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if r.passes(rec, prefs) {
			filtered = append(filtered, rec)
		}
	}

	for i := range filtered {
		s := r.score(filtered[i], prefs)
		filtered[i].Score = &s
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return *filtered[i].Score > *filtered[j].Score
	})

	return filtered
}

// passes applies the hard constraints. A record missing a numeric field is
// only dropped by constraints that require the field to be present: a budget
// demands a price, but an absent area never trips a square-footage bound.
// Price over budget is not dropped here; the scoring model penalizes it.
func (r *Ranker) passes(rec models.Record, p models.Preferences) bool {
	if p.Budget != nil && rec.PriceValue == nil {
		return false
	}
	if p.PreferredBeds != nil && rec.BedsValue != nil && *rec.BedsValue < *p.PreferredBeds {
		return false
	}
	if p.PreferredBaths != nil && rec.BathsValue != nil && *rec.BathsValue < *p.PreferredBaths {
		return false
	}
	if rec.SqftValue != nil {
		if p.MinSqft != nil && *rec.SqftValue < *p.MinSqft {
			return false
		}
		if p.MaxSqft != nil && *rec.SqftValue > *p.MaxSqft {
			return false
		}
	}
	if p.MaxDaysOnMarket != nil {
		if days := parseIntField(rec.DaysOnMarket); days != nil && *days > *p.MaxDaysOnMarket {
			return false
		}
	}
	return true
}

// score sums the independent weighted terms and clamps the total at zero.
func (r *Ranker) score(rec models.Record, p models.Preferences) float64 {
	w := r.weights
	score := 0.0

	// Price term: reward proximity to budget from below; prices over budget
	// take a growing penalty instead of zeroing out.
	if p.Budget != nil && rec.PriceValue != nil && *p.Budget > 0 {
		ratio := float64(*rec.PriceValue) / float64(*p.Budget)
		if ratio <= 1 {
			score += (1 - math.Abs(1-ratio)) * w.PriceWeight
		} else {
			score -= (ratio - 1) * w.OverBudgetPenalty
		}
	}

	// Recency term: linear decay, zero floor around RecencyMax*RecencyDecayDays days
	if days := parseIntField(rec.DaysOnMarket); days != nil {
		if bonus := w.RecencyMax - float64(*days)/w.RecencyDecayDays; bonus > 0 {
			score += bonus
		}
	}

	// Space term: extra area beyond the requested floor, capped
	if p.MinSqft != nil && rec.SqftValue != nil {
		bonus := float64(*rec.SqftValue-*p.MinSqft) / w.SpaceDivisor
		if bonus > w.SpaceMax {
			bonus = w.SpaceMax
		}
		if bonus > 0 {
			score += bonus
		}
	}

	// Bed term: an exact match outranks merely having enough beds
	if p.PreferredBeds != nil && rec.BedsValue != nil {
		if *rec.BedsValue == *p.PreferredBeds {
			score += w.BedExactBonus
		} else if *rec.BedsValue > *p.PreferredBeds {
			score += w.BedOverBonus
		}
	}

	if p.PreferredBaths != nil && rec.BathsValue != nil && *rec.BathsValue >= *p.PreferredBaths {
		score += w.BathMatchBonus
	}

	if score < 0 {
		score = 0
	}
	return score
}
