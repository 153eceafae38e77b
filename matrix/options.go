// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense constructors.
//
// There is a single switch, the finite-only policy; it is fixed per Dense
// at construction and never read from global state.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set,
// Apply and FromRows.
const DefaultValidateNaNInf = true

// Option mutates constructor Options.
type Option func(*Options)

// Options holds the resolved constructor configuration.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables the finite-only numeric policy (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithoutNaNInfCheck disables the finite-only numeric policy, so a Dense can
// carry raw caller data that is validated later by a dedicated pass.
func WithoutNaNInfCheck() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
