package configs

// SQLite holds configuration for the embedded database file that backs all
// durable state. The database is local to the machine; there is no remote
// persistence.
type SQLite struct {
	// Path is the SQLite database file. The file is created on first use.
	Path string `env:"PATH" envDefault:"ansuads.db"`
	// RunMigrations controls whether schema migrations are executed on
	// startup. Only honoured by main.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}
