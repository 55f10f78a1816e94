package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIURL    = "http://localhost:8080/api"
	DefaultLoginPath = "/auth/login"

	// APIURLEnv overrides api_url from public.yaml.
	APIURLEnv = "KALSUBAI_API_URL"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	APIURL         string   `yaml:"api_url" validate:"required,url"`
	SecureCookies  bool     `yaml:"secure_cookies"`
	LoginPath      string   `yaml:"login_path" validate:"required,startswith=/"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	FeaturedRooms  int      `yaml:"featured_rooms" validate:"gte=0"`

	// FormRatePerMinute limits form posts per client and form; 0 disables.
	FormRatePerMinute int `yaml:"form_rate_per_minute" validate:"gte=0"`
	FormBurst         int `yaml:"form_burst" validate:"gte=0"`
}

type Private struct {
	// CookieKey seals the user cookie; base64 of 32 random bytes.
	CookieKey string `yaml:"cookie_key" validate:"required,base64"`
}

func (c *Config) CookieKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.private.CookieKey)
	if err != nil {
		return nil, fmt.Errorf("cookie_key is not valid base64: %w", err)
	}
	return key, nil
}

func defaultPublic() Public {
	return Public{
		APIURL:        DefaultAPIURL,
		LoginPath:     DefaultLoginPath,
		LogLevel:      "info",
		FeaturedRooms: 3,

		FormRatePerMinute: 10,
		FormBurst:         5,
	}
}

// loadPath fills output from configPath. A missing file keeps the defaults.
func loadPath(configPath string, output any) error {
	configFile, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder, applies the
// environment override for the API URL and validates the result.
func Load(configFolder string) (*Config, error) {
	public := defaultPublic()
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil {
		return nil, err
	}

	if v := os.Getenv(APIURLEnv); v != "" {
		public.APIURL = v
	}

	cfg := &Config{Public: public, private: private}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c.Public); err != nil {
		return fmt.Errorf("invalid public config: %w", err)
	}
	if err := validate.Struct(c.private); err != nil {
		return fmt.Errorf("invalid private config: %w", err)
	}
	if key, err := c.CookieKey(); err != nil || len(key) != 32 {
		return fmt.Errorf("cookie_key must decode to 32 bytes")
	}
	return nil
}

// New builds a config in code; used by tools and tests.
func New(public Public, cookieKey []byte) *Config {
	return &Config{
		Public:  public,
		private: Private{CookieKey: base64.StdEncoding.EncodeToString(cookieKey)},
	}
}
