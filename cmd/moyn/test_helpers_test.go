package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moyn-dev/moyn-cli/internal/testsupport"
)

type cliTestEnv struct {
	server     *testsupport.BlogServer
	configPath string
}

// setupCLITestEnv starts a stub service and writes a config file that is
// logged in against it.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	isolateEnv(t)

	server := testsupport.NewBlogServer(t)
	cfg := testsupport.NewConfig(t, testsupport.WithServer(server))
	return &cliTestEnv{
		server:     server,
		configPath: testsupport.WriteConfig(t, cfg),
	}
}

// isolateEnv keeps the developer's own session and config out of tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "xdg"))
	t.Setenv("MOYN_API_TOKEN", "")
	t.Setenv("MOYN_API_URL", "")
}

type cliResult struct {
	stdout string
	stderr string
	code   int
}

func runCLI(t *testing.T, args []string, configPath string) cliResult {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath, input string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	code := run(append(flags, args...), strings.NewReader(input), &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func requireSuccess(t *testing.T, res cliResult) {
	t.Helper()
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d\nstdout: %s\nstderr: %s", res.code, res.stdout, res.stderr)
	}
}

func requireFailure(t *testing.T, res cliResult) {
	t.Helper()
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d\nstdout: %s\nstderr: %s", res.code, res.stdout, res.stderr)
	}
	if !strings.HasPrefix(res.stderr, "Error: ") {
		t.Fatalf("expected stderr to start with %q, got %q", "Error: ", res.stderr)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
