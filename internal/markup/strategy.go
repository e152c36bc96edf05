package markup

import (
	"log/slog"

	"rollcall/internal/logging"
)

// Strategy is one attempt at extracting a field value from a page.
type Strategy struct {
	Name    string
	Extract func(doc *Document) (string, bool)
}

// Chain is the ordered fallback list for a single field.
type Chain struct {
	Field      string
	Strategies []Strategy
}

// Outcome records a single strategy evaluation, for diagnostics.
type Outcome struct {
	Field     string `json:"field"`
	Strategy  string `json:"strategy"`
	Value     string `json:"value,omitempty"`
	Hit       bool   `json:"hit"`
	Recovered bool   `json:"recovered,omitempty"`
}

// Run evaluates strategies in order and returns the first value produced.
// Misses and recovered panics are logged at debug level; a chain that
// produces nothing is a field miss, not an error.
func (c Chain) Run(logger *slog.Logger, doc *Document) (string, bool) {
	for _, strategy := range c.Strategies {
		value, hit, recovered := attempt(strategy, doc)
		if recovered {
			logger.Warn("extraction strategy panicked, treating as miss",
				logging.String(logging.FieldField, c.Field),
				logging.String(logging.FieldStrategy, strategy.Name))
			continue
		}
		if hit {
			logger.Debug("field extracted",
				logging.String(logging.FieldField, c.Field),
				logging.String(logging.FieldStrategy, strategy.Name))
			return value, true
		}
		logger.Debug("extraction strategy missed",
			logging.String(logging.FieldField, c.Field),
			logging.String(logging.FieldStrategy, strategy.Name))
	}
	return "", false
}

// Trace evaluates every strategy regardless of earlier hits, producing the
// full hit/miss picture for the inspect tooling.
func (c Chain) Trace(doc *Document) []Outcome {
	outcomes := make([]Outcome, 0, len(c.Strategies))
	for _, strategy := range c.Strategies {
		value, hit, recovered := attempt(strategy, doc)
		outcomes = append(outcomes, Outcome{
			Field:     c.Field,
			Strategy:  strategy.Name,
			Value:     value,
			Hit:       hit,
			Recovered: recovered,
		})
	}
	return outcomes
}

// attempt isolates a single strategy evaluation. A panicking strategy is a
// structural parse failure scoped to this one field attempt.
func attempt(strategy Strategy, doc *Document) (value string, hit bool, recovered bool) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
			hit = false
			recovered = true
		}
	}()
	if strategy.Extract == nil {
		return "", false, false
	}
	value, hit = strategy.Extract(doc)
	return value, hit, false
}
