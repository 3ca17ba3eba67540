package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shortscope/shortscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Profiles []Profile `yaml:"profiles" json:"profiles" jsonschema:"required,description=Viewer profiles under study"`
	Regions  []Region  `yaml:"regions" json:"regions" jsonschema:"required,description=Conflict regions with severity weights and seed pools"`

	Training    TrainingConfig    `yaml:"training" json:"training" jsonschema:"description=Training phase configuration"`
	Measurement MeasurementConfig `yaml:"measurement" json:"measurement" jsonschema:"description=Home feed measurement configuration"`
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis" jsonschema:"description=Statistical analysis configuration"`
	LLM         LLMConfig         `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for conflict classification"`
	Browser     BrowserConfig     `yaml:"browser" json:"browser" jsonschema:"description=Browser feed surface configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:shortscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
}

// Profile describes one synthetic viewer account
type Profile struct {
	ID          string   `yaml:"id" json:"id" jsonschema:"required,description=Profile identifier, also names the browser user-data dir"`
	Description string   `yaml:"description" json:"description" jsonschema:"description=Free-form note about the profile"`
	RegionOrder []string `yaml:"region_order" json:"region_order" jsonschema:"description=Explicit training region order, overrides the generated Latin square row"`
}

// Region describes one conflict region under study
type Region struct {
	Name     string   `yaml:"name" json:"name" jsonschema:"required,description=Region label used in records and analysis"`
	Severity float64  `yaml:"severity" json:"severity" jsonschema:"required,description=External severity index score, must be positive"`
	SeedURLs []string `yaml:"seed_urls" json:"seed_urls" jsonschema:"required,description=Known-relevant start items for training sessions"`
}

// TrainingConfig holds training phase settings
type TrainingConfig struct {
	SessionsPerRegion int           `yaml:"sessions_per_region" json:"sessions_per_region" jsonschema:"default=5,description=Complete sessions required per profile and region"`
	ItemsPerSession   int           `yaml:"items_per_session" json:"items_per_session" jsonschema:"default=50,description=Items viewed per training session"`
	DwellMin          time.Duration `yaml:"dwell_min" json:"dwell_min" jsonschema:"default=4s,description=Minimum dwell on a related item"`
	DwellMax          time.Duration `yaml:"dwell_max" json:"dwell_max" jsonschema:"default=12s,description=Maximum dwell on a related item"`
	Sequencing        string        `yaml:"sequencing" json:"sequencing" jsonschema:"default=staggered,enum=staggered,enum=blocked,description=Session ordering across regions"`
}

// MeasurementConfig holds home feed measurement settings
type MeasurementConfig struct {
	Sessions        int           `yaml:"sessions" json:"sessions" jsonschema:"default=10,description=Complete home feed sessions required per profile"`
	ItemsPerSession int           `yaml:"items_per_session" json:"items_per_session" jsonschema:"default=50,description=Items viewed per measurement session"`
	AdvanceMin      time.Duration `yaml:"advance_min" json:"advance_min" jsonschema:"default=300ms,description=Minimum delay between items"`
	AdvanceMax      time.Duration `yaml:"advance_max" json:"advance_max" jsonschema:"default=700ms,description=Maximum delay between items"`
	HomeURL         string        `yaml:"home_url" json:"home_url" jsonschema:"default=https://www.youtube.com/shorts,description=Generic feed entry point"`
	CountUnlabeled  bool          `yaml:"count_unlabeled" json:"count_unlabeled" jsonschema:"default=false,description=Count items with no title and no transcript toward the classification denominator"`
}

// AnalysisConfig holds statistical analysis settings
type AnalysisConfig struct {
	Alpha float64 `yaml:"alpha" json:"alpha" jsonschema:"default=0.05,description=Significance level for the goodness-of-fit test"`
}

// LLMConfig holds LLM configuration for conflict classification
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=10,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// BrowserConfig holds browser feed surface settings
type BrowserConfig struct {
	Bin            string        `yaml:"bin" json:"bin" jsonschema:"description=Chrome/Chromium binary, empty for auto-detect"`
	Headless       bool          `yaml:"headless" json:"headless" jsonschema:"default=false,description=Run the browser headless (not recommended)"`
	ViewportWidth  int           `yaml:"viewport_width" json:"viewport_width" jsonschema:"default=1280,description=Viewport width"`
	ViewportHeight int           `yaml:"viewport_height" json:"viewport_height" jsonschema:"default=900,description=Viewport height"`
	ProfilesDir    string        `yaml:"profiles_dir" json:"profiles_dir" jsonschema:"default=./browser_profiles,description=Directory with per-profile user-data dirs"`
	LoadTimeout    time.Duration `yaml:"load_timeout" json:"load_timeout" jsonschema:"default=30s,description=Bounded wait for the feed surface to become ready"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.DSN == "" {
		c.Database.DSN = "file:shortscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Training.SessionsPerRegion == 0 {
		c.Training.SessionsPerRegion = 5
	}
	if c.Training.ItemsPerSession == 0 {
		c.Training.ItemsPerSession = 50
	}
	if c.Training.DwellMin == 0 {
		c.Training.DwellMin = 4 * time.Second
	}
	if c.Training.DwellMax == 0 {
		c.Training.DwellMax = 12 * time.Second
	}
	if c.Training.Sequencing == "" {
		c.Training.Sequencing = "staggered"
	}

	if c.Measurement.Sessions == 0 {
		c.Measurement.Sessions = 10
	}
	if c.Measurement.ItemsPerSession == 0 {
		c.Measurement.ItemsPerSession = 50
	}
	if c.Measurement.AdvanceMin == 0 {
		c.Measurement.AdvanceMin = 300 * time.Millisecond
	}
	if c.Measurement.AdvanceMax == 0 {
		c.Measurement.AdvanceMax = 700 * time.Millisecond
	}
	if c.Measurement.HomeURL == "" {
		c.Measurement.HomeURL = "https://www.youtube.com/shorts"
	}

	if c.Analysis.Alpha == 0 {
		c.Analysis.Alpha = 0.05
	}

	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 10
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	if c.Browser.ViewportWidth == 0 {
		c.Browser.ViewportWidth = 1280
	}
	if c.Browser.ViewportHeight == 0 {
		c.Browser.ViewportHeight = 900
	}
	if c.Browser.ProfilesDir == "" {
		c.Browser.ProfilesDir = "./browser_profiles"
	}
	if c.Browser.LoadTimeout == 0 {
		c.Browser.LoadTimeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func (c *Config) validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("at least one profile is required")
	}
	seenProfiles := map[string]bool{}
	for _, p := range c.Profiles {
		if p.ID == "" {
			return fmt.Errorf("profile id is required")
		}
		if seenProfiles[p.ID] {
			return fmt.Errorf("duplicate profile id %q", p.ID)
		}
		seenProfiles[p.ID] = true
	}

	if len(c.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	seenRegions := map[string]bool{}
	for _, r := range c.Regions {
		if r.Name == "" {
			return fmt.Errorf("region name is required")
		}
		if r.Name == string(domain.ScopeHome) {
			return fmt.Errorf("region name %q is reserved for the measurement scope", r.Name)
		}
		if seenRegions[r.Name] {
			return fmt.Errorf("duplicate region %q", r.Name)
		}
		seenRegions[r.Name] = true
		if r.Severity <= 0 {
			return fmt.Errorf("region %s: severity must be positive, got %v", r.Name, r.Severity)
		}
		if len(r.SeedURLs) == 0 {
			return fmt.Errorf("region %s: at least one seed url is required", r.Name)
		}
	}

	if c.Training.DwellMax < c.Training.DwellMin {
		return fmt.Errorf("training dwell_max must be >= dwell_min")
	}
	if c.Measurement.AdvanceMax < c.Measurement.AdvanceMin {
		return fmt.Errorf("measurement advance_max must be >= advance_min")
	}
	if s := c.Training.Sequencing; s != "staggered" && s != "blocked" {
		return fmt.Errorf("training sequencing must be staggered or blocked, got %q", s)
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return fmt.Errorf("analysis alpha must be in (0, 1), got %v", c.Analysis.Alpha)
	}

	if _, err := c.Plan(); err != nil {
		return err
	}
	return nil
}

// RegionNames returns region names in configured order
func (c *Config) RegionNames() []string {
	names := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		names[i] = r.Name
	}
	return names
}

// SeverityWeights returns the region -> severity score mapping
func (c *Config) SeverityWeights() map[string]float64 {
	weights := make(map[string]float64, len(c.Regions))
	for _, r := range c.Regions {
		weights[r.Name] = r.Severity
	}
	return weights
}

// SeedURLs returns the seed pool for a region, nil if unknown
func (c *Config) SeedURLs(region string) []string {
	for _, r := range c.Regions {
		if r.Name == region {
			return r.SeedURLs
		}
	}
	return nil
}

// Plan builds the counterbalanced experiment plan: a Latin square row per
// profile by default, with per-profile explicit orders taking precedence.
// Explicit orders relax the strict counterbalancing invariant, as does a
// profile count that is not a multiple of the region count.
func (c *Config) Plan() (domain.Plan, error) {
	profileIDs := make([]string, len(c.Profiles))
	strict := true
	for i, p := range c.Profiles {
		profileIDs[i] = p.ID
		if len(p.RegionOrder) > 0 {
			strict = false
		}
	}

	plan := domain.NewLatinSquarePlan(profileIDs, c.RegionNames())
	for _, p := range c.Profiles {
		if len(p.RegionOrder) > 0 {
			plan[p.ID] = p.RegionOrder
		}
	}
	if strict && len(c.Profiles)%len(c.Regions) != 0 {
		strict = false
	}

	if err := plan.Validate(c.RegionNames(), strict); err != nil {
		return nil, fmt.Errorf("experiment plan: %w", err)
	}
	return plan, nil
}
