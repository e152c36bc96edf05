package match

import (
	"errors"
	"fmt"
	"log/slog"

	"rollcall/internal/logging"
	"rollcall/internal/mapping"
	"rollcall/internal/scrape"
	"rollcall/internal/textutil"
)

// Confidence levels by number provenance.
const (
	ConfidenceExact    = 100
	ConfidenceLabel    = 85
	ConfidenceSequence = 70
	ConfidenceNone     = 0
)

// defaultMinTitleSimilarity is the cosine-similarity floor below which an
// expected-title check demotes a match.
const defaultMinTitleSimilarity = 0.35

// demotedConfidence is the ceiling applied when the extracted title fails the
// expected-title check.
const demotedConfidence = 40

// Result is a scored match for one extracted episode.
type Result struct {
	Success    bool           `json:"success"`
	Episode    scrape.Episode `json:"episode"`
	Season     int            `json:"season,omitempty"`
	Number     int            `json:"number,omitempty"`
	Confidence int            `json:"confidence"`
	Notes      []string       `json:"notes,omitempty"`
}

// Scorer assigns confidence to extracted episodes. MinTitleSimilarity may be
// adjusted before use; zero selects the default floor.
type Scorer struct {
	logger             *slog.Logger
	MinTitleSimilarity float64
}

// NewScorer constructs a Scorer.
func NewScorer(logger *slog.Logger) *Scorer {
	return &Scorer{logger: logging.NewComponentLogger(logger, "match")}
}

// Score rates one episode. When a mapping resolution is supplied, the result
// carries the provider-side season and number; otherwise the locally extracted
// values pass through. An episode with no recovered number falls back to its
// listing position at reduced confidence, and fails outright when it has no
// position either.
func (s *Scorer) Score(ep scrape.Episode, res *mapping.Resolution, expectedTitle string) Result {
	result := Result{Episode: ep}

	switch {
	case ep.HasNumber && ep.NumberSource == scrape.NumberFromTitle:
		result.Confidence = ConfidenceExact
	case ep.HasNumber && ep.NumberSource == scrape.NumberFromLabel:
		result.Confidence = ConfidenceLabel
		result.Notes = append(result.Notes, "episode number taken from accessibility label")
	case !ep.HasNumber && ep.Sequence > 0:
		result.Confidence = ConfidenceSequence
		result.Notes = append(result.Notes,
			fmt.Sprintf("episode number inferred from listing position %d", ep.Sequence))
	default:
		result.Confidence = ConfidenceNone
		result.Notes = append(result.Notes, "no episode number recoverable")
		return result
	}

	result.Success = true
	if res != nil {
		result.Season = res.Season
		result.Number = res.Episode
	} else {
		result.Season = ep.Season
		result.Number = ep.Number
		if !ep.HasNumber {
			result.Number = ep.Sequence
		}
	}

	if expectedTitle != "" && ep.Title != "" {
		s.checkTitle(&result, ep.Title, expectedTitle)
	}

	s.logger.Debug("episode scored",
		logging.String("episode_id", ep.ID),
		logging.Int("confidence", result.Confidence),
		logging.Int("number", result.Number))
	return result
}

func (s *Scorer) checkTitle(result *Result, extracted, expected string) {
	floor := s.MinTitleSimilarity
	if floor <= 0 {
		floor = defaultMinTitleSimilarity
	}

	similarity := textutil.CosineSimilarity(
		textutil.NewFingerprint(extracted),
		textutil.NewFingerprint(expected),
	)
	if similarity >= floor {
		return
	}

	if result.Confidence > demotedConfidence {
		result.Confidence = demotedConfidence
	}
	result.Notes = append(result.Notes,
		fmt.Sprintf("title %q scored %.2f against expected %q", extracted, similarity, expected))
}

// ScoreError converts a reconciliation failure into a failed result with a
// diagnostic note, so batch callers report per-episode failures uniformly
// instead of aborting.
func (s *Scorer) ScoreError(ep scrape.Episode, err error) Result {
	result := Result{Episode: ep, Confidence: ConfidenceNone}

	switch {
	case errors.Is(err, mapping.ErrUnmappedSeason):
		result.Notes = append(result.Notes,
			fmt.Sprintf("season %d has no mapping", displaySeason(ep)))
	case errors.Is(err, mapping.ErrEpisodeOutOfRange):
		result.Notes = append(result.Notes, "episode rebased outside the mapped range")
	default:
		result.Notes = append(result.Notes, err.Error())
	}

	s.logger.Debug("episode failed reconciliation",
		logging.String("episode_id", ep.ID),
		logging.Error(err))
	return result
}

func displaySeason(ep scrape.Episode) int {
	if ep.HasSeason {
		return ep.Season
	}
	return 1
}
