package cliconf

import "sync/atomic"

// defaultConfig holds the process-wide instance set by SetDefault.
var defaultConfig atomic.Pointer[Config]

// SetDefault installs c as the process-wide Config returned by Default.
// Passing nil clears it. The accessor is a convenience for programs
// that want one shared instance; nothing in this package depends on it,
// and tests should construct their own Config with New instead.
func SetDefault(c *Config) {
	defaultConfig.Store(c)
}

// Default returns the Config installed with SetDefault, or nil when
// none has been installed.
func Default() *Config {
	return defaultConfig.Load()
}
