package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SIPCALC_LOGGING_LEVEL.
const EnvPrefix = "SIPCALC"

// Settings holds application-level configuration for sipcalc.
type Settings struct {
	Assumptions domain.Assumptions `mapstructure:"assumptions"`
	Logging     LoggingConfig      `mapstructure:"logging"`
	Output      OutputConfig       `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // console, json, csv
}

func setDefaults(v *viper.Viper) {
	a := domain.DefaultAssumptions()
	v.SetDefault("assumptions.fixed_return_percent", a.FixedReturnPercent)
	v.SetDefault("assumptions.inflation_percent", a.InflationPercent)
	v.SetDefault("assumptions.nps_annuity_rate_percent", a.NPSAnnuityRatePercent)
	v.SetDefault("assumptions.nps_annuity_percent", a.NPSAnnuityPercent)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
}

// LoadSettings reads settings from defaults, an optional YAML file and the
// environment, in increasing order of precedence. A .env file in the working
// directory is loaded into the environment first if present.
func LoadSettings(configPath string) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate rejects assumptions the projection engine cannot use.
func (s *Settings) Validate() error {
	a := s.Assumptions
	if a.FixedReturnPercent < 0 {
		return fmt.Errorf("assumptions.fixed_return_percent cannot be negative")
	}
	if a.InflationPercent < 0 {
		return fmt.Errorf("assumptions.inflation_percent cannot be negative")
	}
	if a.NPSAnnuityRatePercent < 0 {
		return fmt.Errorf("assumptions.nps_annuity_rate_percent cannot be negative")
	}
	if a.NPSAnnuityPercent < domain.MinNPSAnnuityPercent || a.NPSAnnuityPercent > 100 {
		return fmt.Errorf("assumptions.nps_annuity_percent must be between %.0f and 100", domain.MinNPSAnnuityPercent)
	}
	return nil
}
