package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// clearEnv hides the user's LEDGER_* variables from the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"LEDGER_JOURNAL", "LEDGER_UNIT", "LEDGER_LOG_LEVEL", "LEDGER_ADJUST_SIGNS", "LEDGER_STRICT"} {
		t.Setenv(name, "")
	}
}

func TestConfig_applyEnv(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "empty",
			env:  map[string]string{},
			want: DefaultConfig(),
		},
		{
			name: "all",
			env: map[string]string{
				"LEDGER_JOURNAL":      "books.txt",
				"LEDGER_UNIT":         "usd",
				"LEDGER_LOG_LEVEL":    "debug",
				"LEDGER_ADJUST_SIGNS": "1",
				"LEDGER_STRICT":       "false",
			},
			want: Config{Journal: "books.txt", Unit: "USD", LogLevel: "debug", AdjustSigns: true, Strict: false},
		},
		{
			name: "empty values are ignored",
			env:  map[string]string{"LEDGER_JOURNAL": "", "LEDGER_STRICT": ""},
			want: DefaultConfig(),
		},
		{
			name:    "invalid bool",
			env:     map[string]string{"LEDGER_STRICT": "maybe"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			err := c.applyEnv(func(name string) (string, bool) {
				v, ok := tc.env[name]
				return v, ok
			})
			if tc.wantErr {
				if err == nil {
					t.Errorf("applyEnv() expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyEnv() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, c); diff != "" {
				t.Errorf("applyEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	// no default file in the package directory.
	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), c); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.yaml")
	content := "journal: books.txt\nunit: USD\nstrict: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) unexpected error: %v", path, err)
	}
	want := Config{Journal: "books.txt", Unit: "USD", Strict: false, LogLevel: "info"}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("LoadConfig(%q) mismatch (-want +got):\n%s", path, diff)
	}

	t.Setenv("LEDGER_UNIT", "nzd")
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) unexpected error: %v", path, err)
	}
	if c.Unit != "NZD" {
		t.Errorf("LoadConfig(%q).Unit = %q, want the environment to win: NZD", path, c.Unit)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("LoadConfig() expected an error on a missing explicit file")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("journal: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Errorf("LoadConfig() expected an error on invalid YAML")
	}

	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("unit: ZZZ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(unknown); err == nil {
		t.Errorf("LoadConfig() expected an error on an unknown unit")
	}
}
