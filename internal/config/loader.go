package config

import (
	"embed"

	"nynf/internal/errors"
	"nynf/internal/logging"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed org.yaml
var configFS embed.FS

// Organization describes the nonprofit issuing documents
type Organization struct {
	Name             string `yaml:"name"`
	ShortName        string `yaml:"short_name"`
	Address          string `yaml:"address"`
	RegistrationNote string `yaml:"registration_note"`
}

// CheckoutConfig holds external payment provider settings
type CheckoutConfig struct {
	KeyID               string `yaml:"key_id"`
	BaseURL             string `yaml:"base_url"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

// StorageConfig selects the transaction log backend
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

// MembershipTier describes one selectable membership level
type MembershipTier struct {
	ID        string          `yaml:"id"`
	Label     string          `yaml:"label"`
	Amount    decimal.Decimal `yaml:"amount"`
	Permanent bool            `yaml:"permanent"`
}

// ImpactMessage maps a donation amount threshold to a message
type ImpactMessage struct {
	Threshold int64  `yaml:"threshold"`
	Message   string `yaml:"message"`
}

// Config is the full application configuration
type Config struct {
	Organization    Organization     `yaml:"organization"`
	Currency        string           `yaml:"currency"`
	CurrencySymbol  string           `yaml:"currency_symbol"`
	Checkout        CheckoutConfig   `yaml:"checkout"`
	Storage         StorageConfig    `yaml:"storage"`
	MembershipTiers []MembershipTier `yaml:"membership_tiers"`
	ImpactMessages  []ImpactMessage  `yaml:"impact_messages"`
}

// TierByID returns the membership tier with the given id
func (c *Config) TierByID(id string) (MembershipTier, bool) {
	for _, tier := range c.MembershipTiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return MembershipTier{}, false
}

// ImpactMessageFor returns the highest-threshold message the amount reaches
func (c *Config) ImpactMessageFor(amount decimal.Decimal) string {
	for _, im := range c.ImpactMessages {
		if amount.GreaterThanOrEqual(decimal.NewFromInt(im.Threshold)) {
			return im.Message
		}
	}
	return ""
}

// Loader handles loading configuration from embedded YAML files
type Loader struct {
	logger *logging.Logger
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		logger: logging.NewDefaultLogger("config"),
	}
}

// Load loads the application config from embedded YAML
func (l *Loader) Load() (*Config, error) {
	data, err := configFS.ReadFile("org.yaml")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to read embedded org config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to parse org config YAML")
	}

	if len(cfg.MembershipTiers) == 0 {
		return nil, errors.Configuration("org config declares no membership tiers")
	}

	l.logger.Debug("Loaded config for %s with %d membership tiers",
		cfg.Organization.ShortName, len(cfg.MembershipTiers))
	return &cfg, nil
}

// Load loads the application config using a default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
