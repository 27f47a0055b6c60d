package configs

import "time"

// Seed configures the one-time bootstrap load of demo campaigns into an
// empty store. Locations may be file paths or http(s) URLs and are tried in
// order; each gets Retries extra attempts before the next one. When every
// location fails the application falls back to a built-in sample campaign,
// so total seed-loading work is always bounded.
type Seed struct {
	// Locations are candidate seed files, tried in order.
	Locations []string `env:"LOCATIONS" envSeparator:"," envDefault:"data/seed.json"`
	// Retries is the number of extra attempts per location.
	Retries uint64 `env:"RETRIES" envDefault:"2"`
	// Backoff is the pause between attempts on one location.
	Backoff time.Duration `env:"BACKOFF" envDefault:"500ms"`
	// Timeout bounds a single http(s) fetch.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"3s"`
}
