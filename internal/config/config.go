// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"
	"time"

	"github.com/rentworks/erp-metrics/pkg/constants"
	"github.com/rentworks/erp-metrics/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for erp-metrics.
type Configuration struct {
	Dataset string        `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ReportConfig holds the report parameters. Numeric parameters are clamped to
// sane bounds by Normalize before any calculator sees them.
type ReportConfig struct {
	Tenant        string `yaml:"tenant,omitempty"`
	Month         string `yaml:"month,omitempty"` // YYYY-MM; empty means the current month
	PartnerFilter string `yaml:"partnerFilter,omitempty"`
	TopDebtors    int    `yaml:"topDebtors,omitempty"`
	Months        int    `yaml:"months,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Normalize()
	return &configuration, nil
}

// Normalize clamps the report parameters to their documented bounds and fills
// in defaults. The calculators trust these values and never re-validate them.
func (conf *Configuration) Normalize() {
	conf.Report.TopDebtors = validation.ClampIntDefault(conf.Report.TopDebtors,
		constants.MinTopDebtors, constants.MaxTopDebtors, constants.DefaultTopDebtors)
	conf.Report.Months = validation.ClampIntDefault(conf.Report.Months,
		constants.MinForecastMonths, constants.MaxForecastMonths, constants.DefaultForecastMonths)
}

// TargetMonth resolves the configured report month, falling back to the month
// of the given reference time when none is configured.
func (rc ReportConfig) TargetMonth(now time.Time) (time.Time, error) {
	if rc.Month == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	month, err := time.Parse(constants.MonthLayout, rc.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid report month %s: %w", rc.Month, err)
	}
	return month, nil
}
