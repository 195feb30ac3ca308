package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/plotbook/internal/units"
)

// DefaultConfigPath is the path to the canonical render defaults file.
const DefaultConfigPath = "config/render.defaults.json"

// Fallback values used by the Get* accessors when a field is not set.
const (
	defaultOutputDir     = "plots"
	defaultWidthInches   = 6.4
	defaultHeightInches  = 4.8
	defaultDPI           = 100
	defaultSeed          = 19680801
	defaultImagePath     = "stinkbug.png"
	defaultViewElevation = 30.0
	defaultViewAzimuth   = -60.0
	defaultSpeedUnits    = units.KPH
)

// RenderConfig holds the settings shared by the plotbook and camera-model
// commands. Fields omitted from the JSON file fall back to the defaults
// returned by the Get* methods, so partial configs are safe.
type RenderConfig struct {
	// Output
	OutputDir *string `json:"output_dir,omitempty"`
	HTML      *bool   `json:"html,omitempty"` // also write go-echarts pages where supported

	// Figure geometry. Width and height are the figure size used when an
	// example does not choose its own.
	WidthInches  *float64 `json:"width_in,omitempty"`
	HeightInches *float64 `json:"height_in,omitempty"`
	DPI          *int     `json:"dpi,omitempty"`

	// Data
	Seed      *int64  `json:"seed,omitempty"`
	ImagePath *string `json:"image_path,omitempty"`

	// 3D view in degrees, as in a view_init(elev, azim) call.
	ViewElevation *float64 `json:"view_elevation,omitempty"`
	ViewAzimuth   *float64 `json:"view_azimuth,omitempty"`

	// SpeedUnits is the unit of the running-speed bar labels.
	SpeedUnits *string `json:"speed_units,omitempty"`

	Verbose *bool `json:"verbose,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }
func ptrInt64(v int64) *int64       { return &v }

// EmptyRenderConfig returns a RenderConfig with all fields set to nil.
func EmptyRenderConfig() *RenderConfig {
	return &RenderConfig{}
}

// DefaultRenderConfig returns a RenderConfig with every field populated
// from the built-in defaults.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		OutputDir:     ptrString(defaultOutputDir),
		HTML:          ptrBool(false),
		WidthInches:   ptrFloat64(defaultWidthInches),
		HeightInches:  ptrFloat64(defaultHeightInches),
		DPI:           ptrInt(defaultDPI),
		Seed:          ptrInt64(defaultSeed),
		ImagePath:     ptrString(defaultImagePath),
		ViewElevation: ptrFloat64(defaultViewElevation),
		ViewAzimuth:   ptrFloat64(defaultViewAzimuth),
		SpeedUnits:    ptrString(defaultSpeedUnits),
		Verbose:       ptrBool(false),
	}
}

// LoadRenderConfig loads a RenderConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRenderConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *RenderConfig) Validate() error {
	if c.WidthInches != nil && *c.WidthInches <= 0 {
		return fmt.Errorf("width_in must be positive, got %f", *c.WidthInches)
	}
	if c.HeightInches != nil && *c.HeightInches <= 0 {
		return fmt.Errorf("height_in must be positive, got %f", *c.HeightInches)
	}
	if c.DPI != nil && (*c.DPI < 10 || *c.DPI > 1200) {
		return fmt.Errorf("dpi must be between 10 and 1200, got %d", *c.DPI)
	}
	if c.OutputDir != nil && *c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.SpeedUnits != nil && !units.IsValid(*c.SpeedUnits) {
		return fmt.Errorf("speed_units must be one of %s, got %q", units.GetValidUnitsString(), *c.SpeedUnits)
	}
	if c.ViewElevation != nil && (*c.ViewElevation < -90 || *c.ViewElevation > 90) {
		return fmt.Errorf("view_elevation must be between -90 and 90, got %f", *c.ViewElevation)
	}
	return nil
}

// GetOutputDir returns the output_dir value or the default.
func (c *RenderConfig) GetOutputDir() string {
	if c.OutputDir == nil {
		return defaultOutputDir
	}
	return *c.OutputDir
}

// GetHTML returns the html value or the default.
func (c *RenderConfig) GetHTML() bool {
	if c.HTML == nil {
		return false
	}
	return *c.HTML
}

// GetWidthInches returns the width_in value or the default.
func (c *RenderConfig) GetWidthInches() float64 {
	if c.WidthInches == nil {
		return defaultWidthInches
	}
	return *c.WidthInches
}

// GetHeightInches returns the height_in value or the default.
func (c *RenderConfig) GetHeightInches() float64 {
	if c.HeightInches == nil {
		return defaultHeightInches
	}
	return *c.HeightInches
}

// GetDPI returns the dpi value or the default.
func (c *RenderConfig) GetDPI() int {
	if c.DPI == nil {
		return defaultDPI
	}
	return *c.DPI
}

// GetSeed returns the seed value or the default.
func (c *RenderConfig) GetSeed() int64 {
	if c.Seed == nil {
		return defaultSeed
	}
	return *c.Seed
}

// GetImagePath returns the image_path value or the default.
func (c *RenderConfig) GetImagePath() string {
	if c.ImagePath == nil || *c.ImagePath == "" {
		return defaultImagePath
	}
	return *c.ImagePath
}

// GetViewElevation returns the view_elevation value or the default.
func (c *RenderConfig) GetViewElevation() float64 {
	if c.ViewElevation == nil {
		return defaultViewElevation
	}
	return *c.ViewElevation
}

// GetViewAzimuth returns the view_azimuth value or the default.
func (c *RenderConfig) GetViewAzimuth() float64 {
	if c.ViewAzimuth == nil {
		return defaultViewAzimuth
	}
	return *c.ViewAzimuth
}

// GetVerbose returns the verbose value or the default.
func (c *RenderConfig) GetVerbose() bool {
	if c.Verbose == nil {
		return false
	}
	return *c.Verbose
}

// GetSpeedUnits returns the speed_units value or the default.
func (c *RenderConfig) GetSpeedUnits() string {
	if c.SpeedUnits == nil {
		return defaultSpeedUnits
	}
	return *c.SpeedUnits
}
