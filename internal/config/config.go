package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"stock-organizer/internal/blockparser"
	"stock-organizer/internal/sizes"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
	Size   SizeConfig   `mapstructure:"size"`
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig controls directory scans in batch mode
type InputConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs"` // Glob patterns, e.g. "**/output/**"
	Workers     int      `mapstructure:"workers"`      // Workbooks converted in parallel
}

// SheetConfig describes the source report template
type SheetConfig struct {
	SkipRows   int    `mapstructure:"skip_rows"`   // Preamble rows before the first block
	MinColumns int    `mapstructure:"min_columns"` // Narrowest acceptable data row
	Layout     string `mapstructure:"layout"`      // "detail" or "summary"
}

// SizeConfig selects the size-token grammar
type SizeConfig struct {
	Grammar       string `mapstructure:"grammar"` // "letter" or "numeric"
	Anchor        string `mapstructure:"anchor"`  // "end" or "anywhere"
	RequirePrefix bool   `mapstructure:"require_prefix"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Output file name (without extension)
}

// ServerConfig holds settings for -serve mode
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	MaxUploadMB    int64         `mapstructure:"max_upload_mb"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RatePerMinute  int           `mapstructure:"rate_per_minute"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `mapstructure:"file"`  // Log file name inside output.dir
	Level string `mapstructure:"level"` // Console threshold
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := loadDotEnv(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	// STOCK_SHEET_SKIP_ROWS, STOCK_SERVER_ADDR, ...
	v.SetEnvPrefix("STOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Skip rows: 8, size grammar: letter")
			fmt.Println("  Output:    ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration Load produces without a file,
// without touching the filesystem.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Unmarshal of plain defaults cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// loadDotEnv exports the STOCK_* variables of a .env file next to the
// config file. Variables already set in the environment win.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.exclude_dirs", []string{"**/output/**"})
	v.SetDefault("input.workers", 4)

	// Template of the "saldos por bodega" report: 8 header rows, 4 columns
	v.SetDefault("sheet.skip_rows", 8)
	v.SetDefault("sheet.min_columns", 4)
	v.SetDefault("sheet.layout", string(blockparser.LayoutDetail))

	v.SetDefault("size.grammar", string(sizes.GrammarLetter))
	v.SetDefault("size.anchor", string(sizes.AnchorEnd))
	v.SetDefault("size.require_prefix", true)
	v.SetDefault("size.case_sensitive", true)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "archivo_organizado_con_tallas")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.rate_per_minute", 120)
	v.SetDefault("server.session_ttl", "30m")

	v.SetDefault("log.file", "stock_organizer.log")
	v.SetDefault("log.level", "info")
}

func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the output file path for the given extension
func (c *Config) GetOutputPath(ext string) string {
	return c.OutputPathFor(c.Output.FileName, ext)
}

// OutputPathFor returns the path of an output named name inside output.dir
func (c *Config) OutputPathFor(name, ext string) string {
	return filepath.Join(c.Output.Dir, name+"."+strings.TrimPrefix(ext, "."))
}

// GetLogPath returns the log file path
func (c *Config) GetLogPath() string {
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.Output.Dir, c.Log.File)
}

// ParseOptions converts the sheet section into block parser options
func (c *Config) ParseOptions() blockparser.Options {
	return blockparser.Options{
		SkipRows:   c.Sheet.SkipRows,
		MinColumns: c.Sheet.MinColumns,
		Layout:     blockparser.Layout(c.Sheet.Layout),
	}
}

// SizeOptions converts the size section into extractor options
func (c *Config) SizeOptions() sizes.Options {
	return sizes.Options{
		Grammar:       sizes.Grammar(c.Size.Grammar),
		Anchor:        sizes.Anchor(c.Size.Anchor),
		RequirePrefix: c.Size.RequirePrefix,
		CaseSensitive: c.Size.CaseSensitive,
	}
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB * 1024 * 1024
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Sheet.SkipRows < 0 {
		return fmt.Errorf("sheet.skip_rows cannot be negative: %d", c.Sheet.SkipRows)
	}
	if c.Sheet.MinColumns < 4 {
		return fmt.Errorf("sheet.min_columns must be at least 4: %d", c.Sheet.MinColumns)
	}

	switch blockparser.Layout(c.Sheet.Layout) {
	case blockparser.LayoutDetail, blockparser.LayoutSummary:
	default:
		return fmt.Errorf("sheet.layout must be %q or %q, got %q",
			blockparser.LayoutDetail, blockparser.LayoutSummary, c.Sheet.Layout)
	}

	// sizes.New validates grammar and anchor
	if _, err := sizes.New(c.SizeOptions()); err != nil {
		return fmt.Errorf("invalid size configuration: %w", err)
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	if c.Input.Workers < 1 {
		return fmt.Errorf("input.workers must be at least 1: %d", c.Input.Workers)
	}

	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Stock Organizer Configuration ===")
	fmt.Printf("Skip Rows:        %d\n", c.Sheet.SkipRows)
	fmt.Printf("Min Columns:      %d\n", c.Sheet.MinColumns)
	fmt.Printf("Layout:           %s\n", c.Sheet.Layout)
	fmt.Printf("Size Grammar:     %s (anchor: %s, prefix required: %v)\n",
		c.Size.Grammar, c.Size.Anchor, c.Size.RequirePrefix)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.GetOutputPath("xlsx"))
	fmt.Printf("Server Address:   %s\n", c.Server.Addr)
	fmt.Println("=====================================")
}
