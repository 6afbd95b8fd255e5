package compose

import "hokusai/pkg/style"

// defaultConcurrency is the per-sequence cap on in-flight child resolutions.
const defaultConcurrency = 8

// defaultUtilityProp is the conventional props key for utility-class strings.
const defaultUtilityProp = "tw"

type config struct {
	presets     style.Presets
	utilityProp string
	concurrency int
}

func defaultConfig() config {
	return config{
		presets:     style.DefaultPresets(),
		utilityProp: defaultUtilityProp,
		concurrency: defaultConcurrency,
	}
}

// Option configures a compilation. The zero set of options uses the default
// preset table, the "tw" utility-class prop, and a concurrency cap of 8.
type Option func(*config)

// WithPresets replaces the preset table. The table is read, never mutated;
// merging a partial table over the defaults is the caller's responsibility.
// Passing nil disables preset lookup, like WithoutPresets.
func WithPresets(p style.Presets) Option {
	return func(c *config) {
		c.presets = p
	}
}

// WithoutPresets disables preset lookup entirely.
func WithoutPresets() Option {
	return func(c *config) {
		c.presets = nil
	}
}

// WithUtilityProp changes the props key the utility-class string is read from.
func WithUtilityProp(name string) Option {
	return func(c *config) {
		if name != "" {
			c.utilityProp = name
		}
	}
}

// WithConcurrency changes the per-sequence cap on simultaneously in-flight
// child resolutions. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.concurrency = n
		}
	}
}
