package photos

import (
	"sort"
	"strings"
)

// Scoring weights for the image relevance ranker. The weights are a
// hand-tuned sum, kept as named constants so each signal is independently
// testable and tunable.
const (
	// cityNameBonus is the dominant signal: the city's own name appearing in
	// the photo text.
	cityNameBonus = 60.0

	// iconicTermBonus accrues per matched iconic-vocabulary term.
	iconicTermBonus = 15.0

	// avoidTermPenalty accrues per matched avoid-vocabulary term. It is five
	// times the iconic bonus so that a single undesirable match outweighs
	// several iconic matches.
	avoidTermPenalty = 75.0

	// Likes tiers: each threshold crossed adds its bonus on top of the
	// previous tiers.
	likesTier1Threshold = 100
	likesTier1Bonus     = 50.0
	likesTier2Threshold = 500
	likesTier2Bonus     = 30.0
	likesTier3Threshold = 1000
	likesTier3Bonus     = 20.0

	// Continuous popularity component: likes/likesPerPoint, capped so one
	// viral photo can't win on raw likes alone.
	likesPerPoint      = 50.0
	likesContinuousCap = 30.0

	// Resolution signals. High-resolution photos get a bonus per axis;
	// anything below full-HD-equivalent is actively deprioritized.
	highResThresholdPx = 3000
	highResBonus       = 15.0
	minUsableWidthPx   = 1920
	minUsableHeightPx  = 1080
	lowResPenalty      = 30.0
)

// iconicTerms mark photos likely to show the city itself.
var iconicTerms = []string{
	"landmark", "skyline", "tower", "bridge", "cathedral", "famous",
	"downtown", "harbor", "temple", "beach", "castle", "monument",
	"architecture", "cityscape", "panorama", "aerial", "view",
	"iconic", "historic", "palace", "square", "plaza", "building",
	"statue", "memorial", "gate", "fortress",
}

// avoidTerms mark photos that tend to be about something other than the
// city: interiors, food, people, animals.
var avoidTerms = []string{
	"interior", "indoor", "room", "office", "restaurant", "cafe",
	"food", "person", "people", "close-up", "closeup", "abstract",
	"crowd", "portrait", "tourist", "selfie", "dog", "cat",
	"animal", "pet",
}

// SelectBest scores every candidate against the city name and returns the
// highest scorer. It is a greedy single-pass ranker: deterministic for
// identical input, stable on ties (earlier candidate wins), and re-run from
// scratch whenever the pool changes. candidates must not be empty.
func SelectBest(candidates []Candidate, cityName string) Candidate {
	city := strings.ToLower(cityName)

	scored := make([]struct {
		candidate Candidate
		score     float64
	}, len(candidates))
	for i, candidate := range candidates {
		scored[i].candidate = candidate
		scored[i].score = scoreCandidate(candidate, city)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored[0].candidate
}

func scoreCandidate(candidate Candidate, cityLower string) float64 {
	score := 0.0
	blob := strings.ToLower(candidate.Description + " " + candidate.AltDescription)

	if cityLower != "" && strings.Contains(blob, cityLower) {
		score += cityNameBonus
	}

	for _, term := range iconicTerms {
		if strings.Contains(blob, term) {
			score += iconicTermBonus
		}
	}

	for _, term := range avoidTerms {
		if strings.Contains(blob, term) {
			score -= avoidTermPenalty
		}
	}

	if candidate.Likes > likesTier1Threshold {
		score += likesTier1Bonus
		if candidate.Likes > likesTier2Threshold {
			score += likesTier2Bonus
		}
		if candidate.Likes > likesTier3Threshold {
			score += likesTier3Bonus
		}
	}

	continuous := float64(candidate.Likes) / likesPerPoint
	if continuous > likesContinuousCap {
		continuous = likesContinuousCap
	}
	score += continuous

	if candidate.WidthPx > highResThresholdPx {
		score += highResBonus
	}
	if candidate.HeightPx > highResThresholdPx {
		score += highResBonus
	}
	if candidate.WidthPx > 0 && candidate.WidthPx < minUsableWidthPx {
		score -= lowResPenalty
	}
	if candidate.HeightPx > 0 && candidate.HeightPx < minUsableHeightPx {
		score -= lowResPenalty
	}

	return score
}
