package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunExtension(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()

	script := `#!/bin/sh
echo "args=$*"
echo "LEDGER_JOURNAL=$LEDGER_JOURNAL"
echo "LEDGER_UNIT=$LEDGER_UNIT"
echo "LEDGER_STRICT=$LEDGER_STRICT"
exit 3
`
	if err := os.WriteFile(filepath.Join(tempDir, "ledger-hello"), []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write ledger-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	var out bytes.Buffer
	saved := []any{stdout, *journalFile, *unit, *ignoreVerificationFailure}
	stdout = &out
	*journalFile, *unit, *ignoreVerificationFailure = "books.txt", "usd", true
	t.Cleanup(func() {
		stdout = saved[0].(io.Writer)
		*journalFile, *unit, *ignoreVerificationFailure = saved[1].(string), saved[2].(string), saved[3].(bool)
	})

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatalf("RunExtension() did not find ledger-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}
	want := []string{
		"args=a b",
		"LEDGER_JOURNAL=books.txt",
		"LEDGER_UNIT=USD",
		"LEDGER_STRICT=false",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(out.String()), "\n")); diff != "" {
		t.Errorf("extension output mismatch (-want +got):\n%s", diff)
	}

	if found, _ := RunExtension("nosuchextension", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}

func TestConfig_Environ(t *testing.T) {
	c := Config{Journal: "books.txt", Unit: "NZD", AdjustSigns: true, Strict: false, LogLevel: "warn"}
	got := DefaultConfig()
	env := make(map[string]string)
	for _, kv := range c.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	err := got.applyEnv(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("applyEnv(Environ()) mismatch (-want +got):\n%s", diff)
	}
}
