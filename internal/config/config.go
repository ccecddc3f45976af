// Package config loads application settings from an optional YAML file and
// PAINPLANNER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. PAINPLANNER_PAGE_MARGIN.
const EnvPrefix = "PAINPLANNER"

type Config struct {
	OutputDir string        `mapstructure:"output_dir"`
	PDFName   string        `mapstructure:"pdf_name"`
	DICOMName string        `mapstructure:"dicom_name"`
	LogFile   string        `mapstructure:"log_file"`
	LogLevel  string        `mapstructure:"log_level"`
	Page      PageConfig    `mapstructure:"page"`
	Raster    RasterConfig  `mapstructure:"raster"`
	Patient   PatientConfig `mapstructure:"patient"`
}

// PageConfig holds PDF page settings, in millimetres.
type PageConfig struct {
	Margin float64 `mapstructure:"margin"`
}

// RasterConfig controls the body diagram bitmap resolution.
type RasterConfig struct {
	Scale float64 `mapstructure:"scale"`
}

// PatientConfig identifies the patient in DICOM exports.
type PatientConfig struct {
	Name string `mapstructure:"name"`
	ID   string `mapstructure:"id"`
}

var defaults = map[string]interface{}{
	"output_dir":   ".",
	"pdf_name":     "HPPAP_Summary.pdf",
	"dicom_name":   "HPPAP_Summary.dcm",
	"log_file":     "",
	"log_level":    "info",
	"page.margin":  15.0,
	"raster.scale": 2.0,
	"patient.name": "",
	"patient.id":   "",
}

// Load reads path when given, otherwise painplanner.yaml from the working
// directory if present. Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
		// Bind env vars explicitly so Unmarshal picks up nested keys
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("painplanner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the exporters cannot work with.
func (c *Config) Validate() error {
	if c.Page.Margin <= 0 {
		return fmt.Errorf("page.margin must be positive, got %v", c.Page.Margin)
	}
	if c.Page.Margin*2 >= 210 {
		return fmt.Errorf("page.margin %v leaves no room on an A4 page", c.Page.Margin)
	}
	if c.Raster.Scale <= 0 {
		return fmt.Errorf("raster.scale must be positive, got %v", c.Raster.Scale)
	}
	if c.PDFName == "" {
		return fmt.Errorf("pdf_name is required")
	}
	if c.DICOMName == "" {
		return fmt.Errorf("dicom_name is required")
	}
	return nil
}

// PDFPath is where the summary PDF is written.
func (c *Config) PDFPath() string {
	return filepath.Join(c.OutputDir, c.PDFName)
}

// DICOMPath is where the DICOM export is written.
func (c *Config) DICOMPath() string {
	return filepath.Join(c.OutputDir, c.DICOMName)
}
