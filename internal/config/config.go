package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the process-wide site configuration. It is loaded once at
// start-up and passed explicitly into every pipeline and rendering function;
// nothing reads it through a global.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Paths  PathsConfig  `yaml:"paths"`
	Images ImagesConfig `yaml:"images"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// SiteConfig holds site identity and homepage copy.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	// Decorations are optional file names under the assets directory shown
	// on the home page when present on disk (e.g. animated gifs).
	Decorations []string `yaml:"decorations,omitempty"`
}

// PathsConfig holds the input and output locations, relative to the working
// directory unless absolute.
type PathsConfig struct {
	Projects string `yaml:"projects"`
	About    string `yaml:"about"`
	Assets   string `yaml:"assets"`
	Output   string `yaml:"output"`
}

// ImagesConfig holds the asset pipeline caps.
type ImagesConfig struct {
	MaxWidth   int `yaml:"max_width"`   // full-size derivative cap, px
	ThumbWidth int `yaml:"thumb_width"` // thumbnail derivative cap, px
	Quality    int `yaml:"quality"`     // webp encode quality, 1-100
}

// ThemeConfig holds the design tokens the stylesheet and templates are
// generated from. Every color/size/font has exactly one source of truth here.
type ThemeConfig struct {
	Background      string `yaml:"background"`
	Text            string `yaml:"text"`
	Accent          string `yaml:"accent"`
	CardBackground  string `yaml:"card_background"`
	FontFamily      string `yaml:"font_family"`
	HeadingFont     string `yaml:"heading_font"`
	MaxContentWidth int    `yaml:"max_content_width"` // px
	ThumbDisplay    int    `yaml:"thumb_display"`     // listing card thumbnail size, px
}

// Load loads configuration from the specified file.
//
// A .env / .env.local file, if present, is loaded first so that ${VAR}
// references in the YAML can be expanded from it.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Portfolio"
	}
	if cfg.Paths.Projects == "" {
		cfg.Paths.Projects = "projects"
	}
	if cfg.Paths.About == "" {
		cfg.Paths.About = "about.md"
	}
	if cfg.Paths.Assets == "" {
		cfg.Paths.Assets = "assets"
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "output"
	}
	if cfg.Images.MaxWidth == 0 {
		cfg.Images.MaxWidth = 1600
	}
	if cfg.Images.ThumbWidth == 0 {
		cfg.Images.ThumbWidth = 400
	}
	if cfg.Images.Quality == 0 {
		cfg.Images.Quality = 80
	}
	if cfg.Theme.Background == "" {
		cfg.Theme.Background = "#faf8f5"
	}
	if cfg.Theme.Text == "" {
		cfg.Theme.Text = "#1c1b1a"
	}
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = "#8a4f2d"
	}
	if cfg.Theme.CardBackground == "" {
		cfg.Theme.CardBackground = "#ffffff"
	}
	if cfg.Theme.FontFamily == "" {
		cfg.Theme.FontFamily = "Georgia, 'Times New Roman', serif"
	}
	if cfg.Theme.HeadingFont == "" {
		cfg.Theme.HeadingFont = cfg.Theme.FontFamily
	}
	if cfg.Theme.MaxContentWidth == 0 {
		cfg.Theme.MaxContentWidth = 960
	}
	if cfg.Theme.ThumbDisplay == 0 {
		cfg.Theme.ThumbDisplay = 260
	}
}

func validate(cfg *Config) error {
	if cfg.Images.Quality < 1 || cfg.Images.Quality > 100 {
		return fmt.Errorf("images.quality must be between 1 and 100, got %d", cfg.Images.Quality)
	}
	if cfg.Images.ThumbWidth > cfg.Images.MaxWidth {
		return fmt.Errorf("images.thumb_width (%d) must not exceed images.max_width (%d)",
			cfg.Images.ThumbWidth, cfg.Images.MaxWidth)
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Title:       "Jane Doe",
			Subtitle:    "sculpture and print",
			Decorations: []string{"left.gif", "right.gif"},
		},
		Paths: PathsConfig{
			Projects: "projects",
			About:    "about.md",
			Assets:   "assets",
			Output:   "output",
		},
		Images: ImagesConfig{
			MaxWidth:   1600,
			ThumbWidth: 400,
			Quality:    80,
		},
	}
	applyDefaults(&example)

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// loadEnvFiles loads the first .env file found. Missing files are fine.
func loadEnvFiles() {
	for _, p := range []string{".env", ".env.local"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}
