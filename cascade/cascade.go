// Package cascade sequences parsing strategies over raw document variants,
// merging partial results until a sufficiency rule is satisfied. It also
// provides the targeted window search used to disambiguate co-mingled
// metric blocks within one document.
package cascade

import (
	"log/slog"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// SufficiencyFunc decides when enough fields are known to stop trying
// further variants.
type SufficiencyFunc func(bag polis.FieldBag) bool

// DefaultSufficiency is satisfied when a caption is present and at least
// one of views, likes, or comments is known.
func DefaultSufficiency(bag polis.FieldBag) bool {
	if !bag.Has(polis.FieldContent) {
		return false
	}
	return bag.Has(polis.FieldViews) || bag.Has(polis.FieldLikes) || bag.Has(polis.FieldComments)
}

// Runner applies strategies to document variants in priority order.
type Runner struct {
	// Sufficient stops the cascade early once satisfied. Defaults to
	// DefaultSufficiency.
	Sufficient SufficiencyFunc

	// Logger receives per-strategy debug events. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Run merges the partial field bags produced by each strategy against each
// document variant, first-writer-wins: a field populated by an earlier
// variant or higher-priority strategy is never overwritten.
//
// Strategy failures are swallowed and treated as no contribution; the
// cascade is never aborted by a single strategy. When targetID is non-empty,
// strategies implementing polis.TargetedStrategy parse near the identifier
// instead of globally.
func (r *Runner) Run(docs []polis.RawDocument, strategies []polis.Strategy, targetID string) polis.FieldBag {
	sufficient := r.Sufficient
	if sufficient == nil {
		sufficient = DefaultSufficiency
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bag := polis.FieldBag{}
	for _, doc := range docs {
		for _, strategy := range strategies {
			partial, err := parse(strategy, doc, targetID)
			if err != nil {
				logger.Debug("strategy failed",
					"strategy", strategy.Name(),
					"variant", doc.Variant,
					"err", err,
				)
				continue
			}
			if len(partial) == 0 {
				continue
			}

			logger.Debug("strategy contributed",
				"strategy", strategy.Name(),
				"variant", doc.Variant,
				"fields", len(partial),
			)
			bag.Merge(partial)

			if sufficient(bag) {
				logger.Debug("sufficiency reached", "variant", doc.Variant)
				return bag
			}
		}
	}
	return bag
}

// parse invokes one strategy, recovering from panics so a faulty parser
// can never abort the cascade.
func parse(s polis.Strategy, doc polis.RawDocument, targetID string) (bag polis.FieldBag, err error) {
	defer func() {
		if r := recover(); r != nil {
			bag = nil
			err = polis.Errorf(polis.EPARSE, "strategy %s panicked: %v", s.Name(), r)
		}
	}()

	if targetID != "" {
		if ts, ok := s.(polis.TargetedStrategy); ok {
			return ts.ParseNear(doc, targetID)
		}
	}
	return s.Parse(doc)
}
