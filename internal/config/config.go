package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values supplied by the Get* accessors when a field is unset.
const (
	DefaultFPS                  = 30
	DefaultSampleInterval       = 1
	DefaultMinRedChromaticity   = 0.5
	DefaultMaxGreenChromaticity = 0.2
	DefaultAngleJumpThreshold   = 120.0
	DefaultOutputVideo          = "outputs/annotated.avi"
	DefaultInfoFile             = "outputs/robot_info.txt"
	DefaultTrajectoryPlot       = "outputs/Robot_trajectory.png"
	DefaultAnglePlot            = "outputs/Robot_angles.png"
)

// EstimatorConfig represents the root configuration for one estimation run.
// Fields are pointers so a partial JSON file only overrides what it names;
// the Get* methods provide fallback defaults for everything else.
type EstimatorConfig struct {
	// Input/output paths
	VideoFile      *string `json:"video_file,omitempty"`
	OutputVideo    *string `json:"output_video,omitempty"`
	InfoFile       *string `json:"info_file,omitempty"`
	TrajectoryPlot *string `json:"trajectory_plot,omitempty"`
	AnglePlot      *string `json:"angle_plot,omitempty"`
	DatabaseFile   *string `json:"database_file,omitempty"`
	HTMLReport     *string `json:"html_report,omitempty"`

	// Sampling params
	FPS            *int `json:"fps,omitempty"`
	SampleInterval *int `json:"sample_interval,omitempty"`

	// Segmentation params
	MinRedChromaticity   *float64 `json:"min_red_chromaticity,omitempty"`
	MaxGreenChromaticity *float64 `json:"max_green_chromaticity,omitempty"`

	// Angle stabilization params
	AngleJumpThreshold *float64 `json:"angle_jump_threshold,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyConfig returns an EstimatorConfig with all fields set to nil.
func EmptyConfig() *EstimatorConfig {
	return &EstimatorConfig{}
}

// Load reads an EstimatorConfig from a JSON file. The file is validated to
// ensure it has a .json extension and is under the max file size. Fields
// omitted from the JSON file retain their default values, so partial configs
// are safe.
func Load(path string) (*EstimatorConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
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

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *EstimatorConfig) Validate() error {
	if c.FPS != nil && *c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *c.FPS)
	}

	if c.SampleInterval != nil && *c.SampleInterval < 1 {
		return fmt.Errorf("sample_interval must be at least 1, got %d", *c.SampleInterval)
	}

	if c.MinRedChromaticity != nil {
		if *c.MinRedChromaticity < 0 || *c.MinRedChromaticity > 1 {
			return fmt.Errorf("min_red_chromaticity must be between 0 and 1, got %f", *c.MinRedChromaticity)
		}
	}

	if c.MaxGreenChromaticity != nil {
		if *c.MaxGreenChromaticity < 0 || *c.MaxGreenChromaticity > 1 {
			return fmt.Errorf("max_green_chromaticity must be between 0 and 1, got %f", *c.MaxGreenChromaticity)
		}
	}

	if c.AngleJumpThreshold != nil && *c.AngleJumpThreshold <= 0 {
		return fmt.Errorf("angle_jump_threshold must be positive, got %f", *c.AngleJumpThreshold)
	}

	return nil
}

// GetVideoFile returns the input video path, or empty when unset.
func (c *EstimatorConfig) GetVideoFile() string {
	if c.VideoFile == nil {
		return ""
	}
	return *c.VideoFile
}

// GetOutputVideo returns the annotated-video path or the default.
func (c *EstimatorConfig) GetOutputVideo() string {
	if c.OutputVideo == nil || *c.OutputVideo == "" {
		return DefaultOutputVideo
	}
	return *c.OutputVideo
}

// GetInfoFile returns the parameter-report path or the default.
func (c *EstimatorConfig) GetInfoFile() string {
	if c.InfoFile == nil || *c.InfoFile == "" {
		return DefaultInfoFile
	}
	return *c.InfoFile
}

// GetTrajectoryPlot returns the trajectory-plot path or the default.
func (c *EstimatorConfig) GetTrajectoryPlot() string {
	if c.TrajectoryPlot == nil || *c.TrajectoryPlot == "" {
		return DefaultTrajectoryPlot
	}
	return *c.TrajectoryPlot
}

// GetAnglePlot returns the angle-plot path or the default.
func (c *EstimatorConfig) GetAnglePlot() string {
	if c.AnglePlot == nil || *c.AnglePlot == "" {
		return DefaultAnglePlot
	}
	return *c.AnglePlot
}

// GetDatabaseFile returns the sqlite store path; empty disables persistence.
func (c *EstimatorConfig) GetDatabaseFile() string {
	if c.DatabaseFile == nil {
		return ""
	}
	return *c.DatabaseFile
}

// GetHTMLReport returns the chart-page path; empty disables chart output.
func (c *EstimatorConfig) GetHTMLReport() string {
	if c.HTMLReport == nil {
		return ""
	}
	return *c.HTMLReport
}

// GetFPS returns the fps value or the default.
func (c *EstimatorConfig) GetFPS() int {
	if c.FPS == nil {
		return DefaultFPS
	}
	return *c.FPS
}

// GetSampleInterval returns the sample_interval value or the default.
func (c *EstimatorConfig) GetSampleInterval() int {
	if c.SampleInterval == nil {
		return DefaultSampleInterval
	}
	return *c.SampleInterval
}

// GetMinRedChromaticity returns the min_red_chromaticity value or the default.
func (c *EstimatorConfig) GetMinRedChromaticity() float64 {
	if c.MinRedChromaticity == nil {
		return DefaultMinRedChromaticity
	}
	return *c.MinRedChromaticity
}

// GetMaxGreenChromaticity returns the max_green_chromaticity value or the default.
func (c *EstimatorConfig) GetMaxGreenChromaticity() float64 {
	if c.MaxGreenChromaticity == nil {
		return DefaultMaxGreenChromaticity
	}
	return *c.MaxGreenChromaticity
}

// GetAngleJumpThreshold returns the angle_jump_threshold value or the default.
func (c *EstimatorConfig) GetAngleJumpThreshold() float64 {
	if c.AngleJumpThreshold == nil {
		return DefaultAngleJumpThreshold
	}
	return *c.AngleJumpThreshold
}
