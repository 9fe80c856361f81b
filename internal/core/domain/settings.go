package domain

const unknownDescription = "Unknown"

// Transport selects how the MCP server talks to its clients.
type Transport string

// Available transports.
const (
	// TransportHTTP serves the streamable HTTP transport on host:port.
	TransportHTTP Transport = "http"

	// TransportStdio serves JSON-RPC over stdin/stdout.
	TransportStdio Transport = "stdio"
)

// IsValid returns true if the transport is recognised.
func (t Transport) IsValid() bool {
	switch t {
	case TransportHTTP, TransportStdio:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Transport) String() string {
	return string(t)
}

// Description returns a human-readable description of the transport.
func (t Transport) Description() string {
	switch t {
	case TransportHTTP:
		return "Streamable HTTP"
	case TransportStdio:
		return "Stdio (JSON-RPC over stdin/stdout)"
	default:
		return unknownDescription
	}
}

// CorpusSource identifies where the corpus is loaded from at startup.
type CorpusSource string

// Available corpus sources.
const (
	// CorpusSourceBuiltin is the document set compiled into the binary.
	CorpusSourceBuiltin CorpusSource = "builtin"

	// CorpusSourceFile is a single JSON, YAML or TOML file.
	CorpusSourceFile CorpusSource = "file"

	// CorpusSourceDirectory is a directory of markdown or text files.
	CorpusSourceDirectory CorpusSource = "directory"

	// CorpusSourceSQLite is a table in a SQLite database.
	CorpusSourceSQLite CorpusSource = "sqlite"

	// CorpusSourceBolt is a bucket in a bbolt database.
	CorpusSourceBolt CorpusSource = "bolt"
)

// IsValid returns true if the corpus source is recognised.
func (s CorpusSource) IsValid() bool {
	switch s {
	case CorpusSourceBuiltin, CorpusSourceFile, CorpusSourceDirectory, CorpusSourceSQLite, CorpusSourceBolt:
		return true
	default:
		return false
	}
}

// RequiresPath returns true if this source needs corpus.path.
func (s CorpusSource) RequiresPath() bool {
	return s.IsValid() && s != CorpusSourceBuiltin
}

// String returns the string representation.
func (s CorpusSource) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s CorpusSource) Description() string {
	switch s {
	case CorpusSourceBuiltin:
		return "Built-in example documents"
	case CorpusSourceFile:
		return "Document file (JSON, YAML or TOML)"
	case CorpusSourceDirectory:
		return "Directory of markdown/text files"
	case CorpusSourceSQLite:
		return "SQLite table"
	case CorpusSourceBolt:
		return "bbolt bucket"
	default:
		return unknownDescription
	}
}

// ServerSettings holds transport configuration.
type ServerSettings struct {
	// Transport selects stdio or HTTP.
	Transport Transport

	// Host is the HTTP listen host.
	Host string

	// Port is the HTTP listen port.
	Port int

	// RateLimit is the sustained HTTP request rate per second.
	// Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the token bucket size used with RateLimit.
	RateBurst int
}

// CorpusSettings holds corpus loading configuration.
type CorpusSettings struct {
	// Source selects the loader.
	Source CorpusSource

	// Path is the file, directory or database path.
	Path string

	// Pattern is the glob used by the directory source.
	Pattern string

	// BaseURL prefixes relative paths to build document URLs (directory source).
	BaseURL string

	// Table is the SQLite table name.
	Table string

	// Bucket is the bbolt bucket name.
	Bucket string
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Server holds transport settings.
	Server ServerSettings

	// Corpus holds corpus loading settings.
	Corpus CorpusSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The defaults serve the built-in corpus over HTTP on port 8000.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Transport: TransportHTTP,
			Host:      "0.0.0.0",
			Port:      8000,
			RateLimit: 0,
			RateBurst: 10,
		},
		Corpus: CorpusSettings{
			Source:  CorpusSourceBuiltin,
			Pattern: "**/*.{md,markdown,txt}",
			Table:   "documents",
			Bucket:  "documents",
		},
	}
}

// AllTransports returns all available transports.
func AllTransports() []Transport {
	return []Transport{
		TransportHTTP,
		TransportStdio,
	}
}

// AllCorpusSources returns all available corpus sources.
func AllCorpusSources() []CorpusSource {
	return []CorpusSource{
		CorpusSourceBuiltin,
		CorpusSourceFile,
		CorpusSourceDirectory,
		CorpusSourceSQLite,
		CorpusSourceBolt,
	}
}
