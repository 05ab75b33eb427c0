// Package mock provides mock implementations of the polis domain
// interfaces for testing.
package mock

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
)

var _ polis.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of polis.Strategy.
type Strategy struct {
	NameFn  func() string
	ParseFn func(doc polis.RawDocument) (polis.FieldBag, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	return s.ParseFn(doc)
}

var _ polis.TargetedStrategy = (*TargetedStrategy)(nil)

// TargetedStrategy is a mock implementation of polis.TargetedStrategy.
type TargetedStrategy struct {
	Strategy
	ParseNearFn func(doc polis.RawDocument, targetID string) (polis.FieldBag, error)
}

func (s *TargetedStrategy) ParseNear(doc polis.RawDocument, targetID string) (polis.FieldBag, error) {
	return s.ParseNearFn(doc, targetID)
}
