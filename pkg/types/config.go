package types

import "errors"

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	DataFile string `json:"data_file" yaml:"data_file"`
	Adopter  string `json:"adopter,omitempty" yaml:"adopter,omitempty"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Supported backend names.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Defaults applied when a value is not configured.
const (
	DefaultBackend    = BackendText
	DefaultTextFile   = "pets_data.txt"
	DefaultSQLiteFile = "pets.db"
	DefaultLogLevel   = "warn"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrDataFileInvalid = errors.New("data file must be a plain file name")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendText:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataFile == "." || c.DataFile == ".." || containsSeparator(c.DataFile) {
		return ErrDataFileInvalid
	}
	return nil
}

// ResolvedDataFile returns DataFile, or the backend default when unset.
func (c Config) ResolvedDataFile() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultTextFile
}

func containsSeparator(s string) bool {
	for _, r := range s {
		if r == '/' || r == '\\' {
			return true
		}
	}
	return false
}
