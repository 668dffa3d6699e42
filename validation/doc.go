// Package validation provides input validation for configuration and
// parsed almanac data.
//
// Struct tag validation (via go-playground/validator) is used for config
// structs; field names are reported by their mapstructure key.
//
//	type Options struct {
//	    Mode    string `mapstructure:"mode" validate:"oneof=points ranges both"`
//	    Workers int    `mapstructure:"workers" validate:"min=1,max=256"`
//	}
//	err := validation.Validate(opts)
//
// Programmatic validation collects several problems before failing:
//
//	v := validation.New()
//	v.Custom(prev.To() == next.From(), "stages[2]", "breaks the category chain")
//	err := v.Err()
package validation
