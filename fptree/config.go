package fptree

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	defaultSupport    = 0.1
	defaultConfidence = 0.1
	defaultCacheCost  = 1 << 16 // max cost of the ristretto rule-count cache; each cached count costs 1
)

// config holds the tunables for a Tree. Support and Confidence mirror
// spec.md's fractions in (0,1]; CacheCost bounds the read-through cache the
// rule deriver keeps in front of pattern-store lookups.
type config struct {
	Support    float64 `validate:"gt=0,lte=1"`
	Confidence float64 `validate:"gt=0,lte=1"`
	CacheCost  int64   `validate:"gte=0"`
	Logger     zerolog.Logger
}

func defaultConfig() config {
	return config{
		Support:    defaultSupport,
		Confidence: defaultConfidence,
		CacheCost:  defaultCacheCost,
		Logger:     zerolog.Nop(),
	}
}

var configValidator = validator.New()

// validate returns the validator's error if Support, Confidence, or
// CacheCost are out of range. New wraps that error in
// ErrInvalidConfiguration.
func (c config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}
	return nil
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithSupport sets the initial minimum support fraction, which must lie in
// (0,1]. It defaults to 0.1.
func WithSupport(support float64) Option {
	return func(c *config) { c.Support = support }
}

// WithConfidence sets the initial minimum confidence fraction, which must
// lie in (0,1]. It defaults to 0.1. Confidence never filters mining; it is
// only a reportable attribute of emitted rules (spec.md §9).
func WithConfidence(confidence float64) Option {
	return func(c *config) { c.Confidence = confidence }
}

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// WithCache bounds the max cost of the internal rule-derivation read cache.
// A cost of 0 disables the cache.
func WithCache(maxCost int64) Option {
	return func(c *config) { c.CacheCost = maxCost }
}
