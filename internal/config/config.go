// Package config loads zalias settings from a YAML file with
// ZALIAS_-prefixed environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// exampleConfig is written on first run so users edit a documented file
// instead of assembling one from scratch.
const exampleConfig = `# zalias configuration.
#
# instance is the base URL of the mailcow server. api_key must be a
# mailcow admin API key with read/write access.
instance: https://mail.example.com
api_key: ""

# relay_domain is the default domain for new aliases.
relay_domain: relay.example.com

# goto is the mailbox aliases forward to.
goto: you@example.com

# template controls generated usernames. Placeholders:
#   {prefix} {first_name} {last_name} {suffix} {number}
# with optional modifiers, e.g. {first_name:f:de} or {number:100:999}.
# Without a template, usernames are pronounceable handles (kulo.rifa).
#template: "{first_name}.{last_name}"

# mailcow's IPv6 docker proxy masks client addresses, which breaks API
# key IP whitelists. Leave this on unless the instance is IPv4-only.
force_ipv4: true

# Per-domain overrides. Every key above except force_ipv4 can be set per
# alias domain; unset keys inherit the top-level values.
#domains:
#  other.example.com:
#    goto: somewhere-else@example.com
#    template: "{first_name:f}.{number:100:999}"
`

// Config is the tool configuration. Top-level values apply to every
// domain unless a Domains entry overrides them.
type Config struct {
	Instance    string                  `mapstructure:"instance"`
	APIKey      string                  `mapstructure:"api_key"`
	RelayDomain string                  `mapstructure:"relay_domain"`
	Goto        string                  `mapstructure:"goto"`
	Template    string                  `mapstructure:"template"`
	ForceIPv4   bool                    `mapstructure:"force_ipv4"`
	Domains     map[string]DomainConfig `mapstructure:"domains"`
}

// DomainConfig overrides top-level settings for one alias domain.
type DomainConfig struct {
	Instance string `mapstructure:"instance"`
	APIKey   string `mapstructure:"api_key"`
	Goto     string `mapstructure:"goto"`
	Template string `mapstructure:"template"`
}

// Profile is the effective configuration for aliases on one domain.
type Profile struct {
	Domain    string
	Instance  string
	APIKey    string
	Goto      string
	Template  string
	ForceIPv4 bool
}

// Validate reports whether the profile can reach a mailcow instance.
func (p Profile) Validate() error {
	if p.Domain == "" {
		return errors.New("relay_domain is not set")
	}
	if p.Instance == "" {
		return fmt.Errorf("no mailcow instance configured for %s", p.Domain)
	}
	if p.APIKey == "" {
		return fmt.Errorf("no api_key configured for %s", p.Domain)
	}
	return nil
}

// DefaultPath returns the config file location, honoring ZALIAS_CONFIG.
func DefaultPath() string {
	if path := os.Getenv("ZALIAS_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "zalias", "config.yaml")
}

// Load reads the config file at path. When the file does not exist yet,
// Load writes a commented example there and reports created = true; the
// returned config then carries only defaults and environment values.
func Load(path string) (*Config, bool, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults double as the key list AutomaticEnv consults, so every
	// top-level key needs one.
	v.SetDefault("instance", "")
	v.SetDefault("api_key", "")
	v.SetDefault("relay_domain", "")
	v.SetDefault("goto", "")
	v.SetDefault("template", "")
	v.SetDefault("force_ipv4", true)

	v.SetEnvPrefix("ZALIAS")
	v.AutomaticEnv()

	created := false
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, false, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := writeExample(path); err != nil {
			return nil, false, fmt.Errorf("write example config: %w", err)
		}
		created = true
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, created, nil
}

// writeExample creates path with the commented starter config. The file
// holds an API key eventually, hence 0600.
func writeExample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(exampleConfig), 0o600)
}

// PossibleDomains lists the domains aliases can be created on: the relay
// domain first, then every configured override domain in sorted order.
func (c *Config) PossibleDomains() []string {
	domains := []string{c.RelayDomain}
	extra := make([]string, 0, len(c.Domains))
	for d := range c.Domains {
		if d == c.RelayDomain {
			continue
		}
		extra = append(extra, d)
	}
	slices.Sort(extra)
	return append(domains, extra...)
}

// ProfileFor resolves the effective settings for one domain by laying
// its overrides over the top-level values.
func (c *Config) ProfileFor(domain string) Profile {
	p := Profile{
		Domain:    domain,
		Instance:  c.Instance,
		APIKey:    c.APIKey,
		Goto:      c.Goto,
		Template:  c.Template,
		ForceIPv4: c.ForceIPv4,
	}
	if o, ok := c.Domains[domain]; ok {
		if o.Instance != "" {
			p.Instance = o.Instance
		}
		if o.APIKey != "" {
			p.APIKey = o.APIKey
		}
		if o.Goto != "" {
			p.Goto = o.Goto
		}
		if o.Template != "" {
			p.Template = o.Template
		}
	}
	return p
}
