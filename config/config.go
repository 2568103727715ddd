package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig
	Browser BrowserConfig
	Search  SearchConfig
	Scoring ScoringConfig
	DBPath  string
	LogPath string
}

type ServerConfig struct {
	Host           string
	Port           int
	GinMode        string
	AllowedOrigins string
}

type BrowserConfig struct {
	Headless            bool
	NavigationTimeoutMS float64
	SelectorTimeoutMS   float64
	FieldTimeoutMS      float64
	SettleMS            float64
	RecycleCron         string
	ProxyURL            string
}

type SearchConfig struct {
	BaseURL         string
	Origin          string
	DefaultLocation string
	MaxCards        int
	MaxResults      int
	UserAgent       string
	Locale          string
	ViewportWidth   int
	ViewportHeight  int
}

// ScoringConfig is the tunable weight surface for the ranking engine. The
// formulas are fixed; only these constants move, via scoring.yaml.
type ScoringConfig struct {
	PriceWeight       float64 `yaml:"price_weight"`
	OverBudgetPenalty float64 `yaml:"over_budget_penalty"`
	RecencyMax        float64 `yaml:"recency_max"`
	RecencyDecayDays  float64 `yaml:"recency_decay_days"`
	SpaceMax          float64 `yaml:"space_max"`
	SpaceDivisor      float64 `yaml:"space_divisor"`
	BedExactBonus     float64 `yaml:"bed_exact_bonus"`
	BedOverBonus      float64 `yaml:"bed_over_bonus"`
	BathMatchBonus    float64 `yaml:"bath_match_bonus"`
}

func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		PriceWeight:       30,
		OverBudgetPenalty: 10,
		RecencyMax:        20,
		RecencyDecayDays:  10,
		SpaceMax:          20,
		SpaceDivisor:      100,
		BedExactBonus:     15,
		BedOverBonus:      10,
		BathMatchBonus:    10,
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvInt("SERVER_PORT", 8080),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Browser: BrowserConfig{
			Headless:            getEnv("BROWSER_HEADLESS", "true") == "true",
			NavigationTimeoutMS: float64(getEnvInt("NAVIGATION_TIMEOUT_MS", 60000)),
			SelectorTimeoutMS:   float64(getEnvInt("SELECTOR_TIMEOUT_MS", 5000)),
			FieldTimeoutMS:      float64(getEnvInt("FIELD_TIMEOUT_MS", 1000)),
			SettleMS:            float64(getEnvInt("SETTLE_MS", 3000)),
			RecycleCron:         os.Getenv("BROWSER_RECYCLE_CRON"),
			ProxyURL:            os.Getenv("SCRAPE_PROXY_URL"),
		},
		Search: SearchConfig{
			BaseURL:         getEnv("SEARCH_BASE_URL", "https://www.realtor.com/realestateandhomes-search"),
			Origin:          getEnv("SEARCH_ORIGIN", "https://www.realtor.com"),
			DefaultLocation: getEnv("DEFAULT_LOCATION", "Austin_TX"),
			MaxCards:        getEnvInt("MAX_CARDS", 40),
			MaxResults:      getEnvInt("MAX_RESULTS", 10),
			UserAgent: getEnv("SCRAPE_USER_AGENT",
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			Locale:         getEnv("SCRAPE_LOCALE", "en-US"),
			ViewportWidth:  getEnvInt("VIEWPORT_WIDTH", 1920),
			ViewportHeight: getEnvInt("VIEWPORT_HEIGHT", 1080),
		},
		Scoring: DefaultScoring(),
		DBPath:  getEnv("DB_PATH", "recommender.db"),
		LogPath: getEnv("LOG_PATH", "daemon.log"),
	}

	if err := cfg.loadScoringOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadScoringOverrides layers config/scoring.yaml over the built-in weights
// when the file exists.
func (c *Config) loadScoringOverrides() error {
	path := getEnv("SCORING_CONFIG", "config/scoring.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, &c.Scoring)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
