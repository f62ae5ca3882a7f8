package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                    string
	ServiceName               string
	ServiceVersion            string
	HTTPAddr                  string
	ReadTimeout               time.Duration
	WriteTimeout              time.Duration
	LogLevel                  logging.Level
	DataSource                string
	DataSeedFile              string
	DBURL                     string
	DBDisablePreparedBinary   bool
	CacheEnabled              bool
	CacheTTL                  time.Duration
	DataCircuitEnabled        bool
	DataCircuitFailureCount   int
	DataCircuitOpenTimeout    time.Duration
	DataCircuitHalfOpenMaxReq int
	CORSAllowedOrigins        []string
	InternalJobToken          string
	ReportMaxWorkers          int
	MetricsEnabled            bool
	PprofEnabled              bool
	PprofAddr                 string
	UptraceEnabled            bool
	UptraceDSN                string
	PyroscopeEnabled          bool
	PyroscopeServerAddress    string
	PyroscopeAppName          string
	PyroscopeAuthToken        string
	PyroscopeBasicAuthUser    string
	PyroscopeBasicAuthPass    string
	PyroscopeUploadRate       time.Duration
}

// LoadDotEnv preloads variables from the given files without overriding the
// process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	dataSource := strings.ToLower(strings.TrimSpace(getEnv("DATA_SOURCE", DataSourceMemory)))
	switch dataSource {
	case DataSourceMemory, DataSourcePostgres:
	default:
		return Config{}, fmt.Errorf("invalid DATA_SOURCE %q: valid values are %s, %s", dataSource, DataSourceMemory, DataSourcePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dataSource == DataSourcePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when DATA_SOURCE=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := getEnvAsDuration("DATA_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	reportMaxWorkers, err := getEnvAsInt("REPORT_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_MAX_WORKERS: %w", err)
	}
	if reportMaxWorkers < 1 {
		return Config{}, fmt.Errorf("REPORT_MAX_WORKERS must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                    appEnv,
		ServiceName:               getEnv("APP_SERVICE_NAME", "league-stats-api"),
		ServiceVersion:            getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                  getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:               readTimeout,
		WriteTimeout:              writeTimeout,
		LogLevel:                  logLevel,
		DataSource:                dataSource,
		DataSeedFile:              strings.TrimSpace(getEnv("DATA_SEED_FILE", "")),
		DBURL:                     dbURL,
		DBDisablePreparedBinary:   dbDisablePreparedBinary,
		CacheEnabled:              cacheEnabled,
		CacheTTL:                  cacheTTL,
		DataCircuitEnabled:        circuitEnabled,
		DataCircuitFailureCount:   circuitFailureCount,
		DataCircuitOpenTimeout:    circuitOpenTimeout,
		DataCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		CORSAllowedOrigins:        splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		InternalJobToken:          strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		ReportMaxWorkers:          reportMaxWorkers,
		MetricsEnabled:            metricsEnabled,
		PprofEnabled:              pprofEnabled,
		PprofAddr:                 pprofAddr,
		UptraceEnabled:            uptraceEnabled,
		UptraceDSN:                uptraceDSN,
		PyroscopeEnabled:          pyroscopeEnabled,
		PyroscopeServerAddress:    pyroscopeServerAddress,
		PyroscopeAuthToken:        strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPass:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:       pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration requires a strictly positive duration.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStaging, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStaging, EnvProd)
	}
}
