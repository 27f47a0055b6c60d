package configs

// HTTP defines configuration for the HTTP server that serves the UI's JSON
// API. The server is meant for local use, so it binds the loopback
// interface by default.
type HTTP struct {
	// Host is the interface the server binds to. Defaults to loopback.
	Host string `env:"HOST" envDefault:"127.0.0.1"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
