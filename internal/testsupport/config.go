package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/moyn-dev/moyn-cli/internal/config"
)

// TestToken is a well-formed API token accepted by the stub server.
const TestToken = config.TokenPrefix + "test_token"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file lives in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "moyn.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSession stores a session in the test config.
func WithSession(token, apiURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.SetSession(config.Session{APIToken: token, APIURL: apiURL})
	}
}

// WithServer points the test config at a stub server using TestToken.
func WithServer(server *BlogServer) ConfigOption {
	return WithSession(TestToken, server.URL)
}

// WriteConfig saves cfg to a temp config.toml and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moyn", "config.toml")
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	return path
}

// ConfigPath returns a config path inside a fresh temp directory without
// creating the file.
func ConfigPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "moyn", "config.toml")
}
