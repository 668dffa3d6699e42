package solver

import (
	"github.com/kbukum/almanac/validation"
)

// Mode selects which parts a run computes.
type Mode string

const (
	ModePoints Mode = "points"
	ModeRanges Mode = "ranges"
	ModeBoth   Mode = "both"
)

func (m Mode) points() bool { return m == ModePoints || m == ModeBoth }
func (m Mode) ranges() bool { return m == ModeRanges || m == ModeBoth }

// Options tunes a Solver. Zero values are replaced by ApplyDefaults.
type Options struct {
	Mode    Mode `yaml:"mode" mapstructure:"mode" validate:"oneof=points ranges both"`
	Workers int  `yaml:"workers" mapstructure:"workers" validate:"min=1,max=256"`
	// Strict rejects almanacs whose X-to-Y stage labels do not chain.
	Strict bool          `yaml:"strict" mapstructure:"strict"`
	Verify VerifyOptions `yaml:"verify" mapstructure:"verify"`
}

// VerifyOptions controls the brute-force cross-check of part 2.
type VerifyOptions struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Limit is the largest total seed count checked; larger inputs skip it.
	Limit int64 `yaml:"limit" mapstructure:"limit" validate:"gte=0"`
}

// DefaultVerifyLimit keeps the brute force under a second on typical hardware.
const DefaultVerifyLimit = 10_000_000

// DefaultOptions returns sequential evaluation of both parts.
func DefaultOptions() Options {
	o := Options{}
	o.ApplyDefaults()
	return o
}

// ApplyDefaults fills unset fields.
func (o *Options) ApplyDefaults() {
	if o.Mode == "" {
		o.Mode = ModeBoth
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Verify.Limit == 0 {
		o.Verify.Limit = DefaultVerifyLimit
	}
}

// Validate checks the options with their struct tags.
func (o Options) Validate() error {
	return validation.Validate(o)
}
