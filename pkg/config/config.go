package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Public        PublicConfig
	QR            QRConfig
	Seed          SeedConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"CARDLINK_APP_ENV" required:"true"`
	Port         string   `envconfig:"CARDLINK_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"CARDLINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"CARDLINK_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"CARDLINK_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CARDLINK_DB_DSN"`
	Driver string `envconfig:"CARDLINK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CARDLINK_DB_HOST"`
	LegacyPort     int    `envconfig:"CARDLINK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CARDLINK_DB_USER"`
	LegacyPassword string `envconfig:"CARDLINK_DB_PASSWORD"`
	LegacyName     string `envconfig:"CARDLINK_DB_NAME"`
	LegacySSLMode  string `envconfig:"CARDLINK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CARDLINK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CARDLINK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CARDLINK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CARDLINK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CARDLINK_REDIS_URL"`
	Address      string        `envconfig:"CARDLINK_REDIS_ADDR"`
	Password     string        `envconfig:"CARDLINK_REDIS_PASSWORD"`
	DB           int           `envconfig:"CARDLINK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CARDLINK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CARDLINK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CARDLINK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CARDLINK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CARDLINK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. The login
// rate limiter degrades to a pass-through when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"CARDLINK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CARDLINK_JWT_ISSUER" default:"cardlink"`
	ExpirationMinutes int    `envconfig:"CARDLINK_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// AccessTokenTTL returns the configured token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CARDLINK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CARDLINK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CARDLINK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CARDLINK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CARDLINK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"CARDLINK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"CARDLINK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"CARDLINK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type PublicConfig struct {
	// BaseURL is the public card origin embedded into QR codes,
	// e.g. https://cards.example.com.
	BaseURL string `envconfig:"CARDLINK_PUBLIC_BASE_URL" default:"http://localhost:3000"`
	// HideDisabled makes the public resolver answer 404 for DISABLED
	// profiles instead of returning the record with its status.
	HideDisabled bool `envconfig:"CARDLINK_PUBLIC_HIDE_DISABLED" default:"false"`
	// DefaultTheme is applied to new profiles that don't pick one.
	DefaultTheme string `envconfig:"CARDLINK_PUBLIC_DEFAULT_THEME" default:"DARK_MINIMAL"`
}

type QRConfig struct {
	Endpoint string `envconfig:"CARDLINK_QR_ENDPOINT" default:"https://api.qrserver.com/v1/create-qr-code/"`
	Size     string `envconfig:"CARDLINK_QR_SIZE" default:"300x300"`
}

type SeedConfig struct {
	AdminEmail    string `envconfig:"CARDLINK_SEED_ADMIN_EMAIL" default:"admin@demo.com"`
	AdminPassword string `envconfig:"CARDLINK_SEED_ADMIN_PASSWORD" default:"admin123"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CARDLINK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CARDLINK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
