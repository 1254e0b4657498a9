package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `instance: https://mail.example.com
api_key: topsecret
relay_domain: relay.example.com
goto: me@example.com
template: "{first_name}.{last_name}.{number}"
force_ipv4: false

domains:
  shop.example.com:
    goto: shopping@example.com
    template: "{first_name:f}.{number:100:999}"
  b.example.com:
    api_key: otherkey
  a.example.com:
    instance: https://other.example.com
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadReadsValues(t *testing.T) {
	cfg, created, err := Load(writeTestConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if created {
		t.Error("created = true for existing file")
	}

	if cfg.Instance != "https://mail.example.com" {
		t.Errorf("Instance = %q", cfg.Instance)
	}
	if cfg.APIKey != "topsecret" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.ForceIPv4 {
		t.Error("ForceIPv4 = true, config says false")
	}
	if len(cfg.Domains) != 3 {
		t.Errorf("got %d domain overrides, want 3", len(cfg.Domains))
	}
}

func TestLoadMissingWritesExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, created, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !created {
		t.Fatal("created = false for missing file")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("example config not written: %v", err)
	}
	if !strings.Contains(string(raw), "api_key:") {
		t.Error("example config misses api_key key")
	}

	// defaults apply until the user edits the file
	if cfg.Template != "" {
		t.Errorf("Template = %q, want empty default", cfg.Template)
	}
	if !cfg.ForceIPv4 {
		t.Error("ForceIPv4 should default to true")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZALIAS_API_KEY", "from-env")
	t.Setenv("ZALIAS_INSTANCE", "https://env.example.com")

	cfg, _, err := Load(writeTestConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env value", cfg.APIKey)
	}
	if cfg.Instance != "https://env.example.com" {
		t.Errorf("Instance = %q, want env value", cfg.Instance)
	}
	// keys without env overrides keep their file values
	if cfg.RelayDomain != "relay.example.com" {
		t.Errorf("RelayDomain = %q", cfg.RelayDomain)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	_, _, err := Load(writeTestConfig(t, "instance: [unclosed"))
	if err == nil {
		t.Fatal("expected error for broken YAML")
	}
}

func TestPossibleDomains(t *testing.T) {
	cfg := &Config{
		RelayDomain: "relay.example.com",
		Domains: map[string]DomainConfig{
			"b.example.com":     {},
			"a.example.com":     {},
			"relay.example.com": {},
		},
	}

	got := cfg.PossibleDomains()
	want := []string{"relay.example.com", "a.example.com", "b.example.com"}
	if len(got) != len(want) {
		t.Fatalf("PossibleDomains() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PossibleDomains()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProfileForMergesOverrides(t *testing.T) {
	cfg := &Config{
		Instance:    "https://mail.example.com",
		APIKey:      "topsecret",
		RelayDomain: "relay.example.com",
		Goto:        "me@example.com",
		Template:    "{first_name}.{last_name}",
		ForceIPv4:   true,
		Domains: map[string]DomainConfig{
			"shop.example.com": {
				Goto:     "shopping@example.com",
				Template: "{first_name:f}.{number:100:999}",
			},
		},
	}

	p := cfg.ProfileFor("shop.example.com")
	if p.Goto != "shopping@example.com" {
		t.Errorf("Goto = %q, want override", p.Goto)
	}
	if p.Template != "{first_name:f}.{number:100:999}" {
		t.Errorf("Template = %q, want override", p.Template)
	}
	// unset override fields inherit
	if p.Instance != "https://mail.example.com" || p.APIKey != "topsecret" {
		t.Errorf("profile lost inherited values: %+v", p)
	}
	if !p.ForceIPv4 {
		t.Error("ForceIPv4 should inherit")
	}

	p = cfg.ProfileFor("relay.example.com")
	if p.Goto != "me@example.com" {
		t.Errorf("relay Goto = %q, want top-level value", p.Goto)
	}
	if p.Domain != "relay.example.com" {
		t.Errorf("Domain = %q", p.Domain)
	}
}

func TestProfileForKeepsTemplateUnset(t *testing.T) {
	// an empty template means handle-style usernames, so nothing may
	// invent one
	cfg := &Config{RelayDomain: "relay.example.com"}
	if p := cfg.ProfileFor("relay.example.com"); p.Template != "" {
		t.Errorf("Template = %q, want empty", p.Template)
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{"complete", Profile{Domain: "d", Instance: "i", APIKey: "k"}, ""},
		{"no domain", Profile{Instance: "i", APIKey: "k"}, "relay_domain"},
		{"no instance", Profile{Domain: "d", APIKey: "k"}, "instance"},
		{"no key", Profile{Domain: "d", Instance: "i"}, "api_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("ZALIAS_CONFIG", "/tmp/custom/zalias.yaml")
	if got := DefaultPath(); got != "/tmp/custom/zalias.yaml" {
		t.Errorf("DefaultPath() = %q, want env override", got)
	}

	t.Setenv("ZALIAS_CONFIG", "")
	got := DefaultPath()
	if filepath.Base(got) != "config.yaml" {
		t.Errorf("DefaultPath() = %q, want a config.yaml", got)
	}
	if !strings.Contains(got, "zalias") {
		t.Errorf("DefaultPath() = %q, want a zalias directory", got)
	}
}
