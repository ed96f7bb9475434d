package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kat-co/vala"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableSecureMiddleware         bool
	EnableTimeoutMiddleware        bool
	RequestTimeout                 time.Duration
	BodyLimit                      string
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseBody    bool
	LogResponseHeader  bool
	LogCaller          bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	ProbeURL             string
	ProbeTimeout         time.Duration
	EnableProcessMetrics bool
}

// Signer configures key handling and the CET limits.
type Signer struct {
	DefaultNetwork   string
	BasePath         string
	OutcomeBase      int
	MaxDigits        int
	MaxCets          int
	Workers          int
	MaxKeyContexts   int
	KeystoreFile     string
	KeystorePassword string `json:"-"` // sensitive
}

type Server struct {
	Echo       EchoServer
	Management ManagementServer
	Logger     LoggerServer
	Signer     Signer
}

const (
	envPrefixServer = "SERVER"
	dotEnvFile      = ".env.local"
)

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state.
	//
	// Use SERVER_DOTENV_DISABLE=true to skip loading it outside of tests.
	if !runningTests() && !envBool(envPrefixServer+"_DOTENV_DISABLE") {
		dotEnvPath := filepath.Join(projectRoot(), dotEnvFile)
		if err := gotenv.OverLoad(dotEnvPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", dotEnvPath).Msg("Failed to apply env file")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			BaseURL:                        v.GetString("SERVER_ECHO_BASE_URL"),
			EnableCORSMiddleware:           v.GetBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableTrailingSlashMiddleware:  v.GetBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE"),
			EnableSecureMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE"),
			EnableTimeoutMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_TIMEOUT_MIDDLEWARE"),
			RequestTimeout:                 v.GetDuration("SERVER_ECHO_REQUEST_TIMEOUT"),
			BodyLimit:                      v.GetString("SERVER_ECHO_BODY_LIMIT"),
		},
		Management: ManagementServer{
			ProbeURL:             v.GetString("SERVER_MANAGEMENT_PROBE_URL"),
			ProbeTimeout:         v.GetDuration("SERVER_MANAGEMENT_PROBE_TIMEOUT"),
			EnableProcessMetrics: v.GetBool("SERVER_MANAGEMENT_ENABLE_PROCESS_METRICS"),
		},
		Logger: LoggerServer{
			Level:              logLevel(v.GetString("SERVER_LOGGER_LEVEL"), zerolog.InfoLevel),
			RequestLevel:       logLevel(v.GetString("SERVER_LOGGER_REQUEST_LEVEL"), zerolog.DebugLevel),
			LogRequestBody:     v.GetBool("SERVER_LOGGER_LOG_REQUEST_BODY"),
			LogRequestHeader:   v.GetBool("SERVER_LOGGER_LOG_REQUEST_HEADER"),
			LogRequestQuery:    v.GetBool("SERVER_LOGGER_LOG_REQUEST_QUERY"),
			LogResponseBody:    v.GetBool("SERVER_LOGGER_LOG_RESPONSE_BODY"),
			LogResponseHeader:  v.GetBool("SERVER_LOGGER_LOG_RESPONSE_HEADER"),
			LogCaller:          v.GetBool("SERVER_LOGGER_LOG_CALLER"),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Signer: Signer{
			DefaultNetwork:   v.GetString("SIGNER_DEFAULT_NETWORK"),
			BasePath:         v.GetString("SIGNER_BASE_PATH"),
			OutcomeBase:      v.GetInt("SIGNER_OUTCOME_BASE"),
			MaxDigits:        v.GetInt("SIGNER_MAX_DIGITS"),
			MaxCets:          v.GetInt("SIGNER_MAX_CETS"),
			Workers:          v.GetInt("SIGNER_WORKERS"),
			MaxKeyContexts:   v.GetInt("SIGNER_MAX_KEY_CONTEXTS"),
			KeystoreFile:     v.GetString("SIGNER_KEYSTORE_FILE"),
			KeystorePassword: v.GetString("SIGNER_KEYSTORE_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("Invalid configuration")
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":8080")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_BASE_URL", "http://localhost:8080")
	v.SetDefault("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_TIMEOUT_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_REQUEST_TIMEOUT", 60*time.Second)
	v.SetDefault("SERVER_ECHO_BODY_LIMIT", "8M")

	v.SetDefault("SERVER_MANAGEMENT_PROBE_URL", "http://127.0.0.1:8080")
	v.SetDefault("SERVER_MANAGEMENT_PROBE_TIMEOUT", 1*time.Second)
	v.SetDefault("SERVER_MANAGEMENT_ENABLE_PROCESS_METRICS", true)

	v.SetDefault("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String())
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_QUERY", true)
	v.SetDefault("SERVER_LOGGER_LOG_CALLER", false)
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SIGNER_DEFAULT_NETWORK", "mainnet")
	v.SetDefault("SIGNER_BASE_PATH", "m")
	v.SetDefault("SIGNER_OUTCOME_BASE", 2)
	v.SetDefault("SIGNER_MAX_DIGITS", 64)
	v.SetDefault("SIGNER_MAX_CETS", 50000)
	v.SetDefault("SIGNER_WORKERS", runtime.GOMAXPROCS(0))
	v.SetDefault("SIGNER_MAX_KEY_CONTEXTS", 16)
	v.SetDefault("SIGNER_KEYSTORE_FILE", "")
	v.SetDefault("SIGNER_KEYSTORE_PASSWORD", "")
}

// Validate checks the signer limits are usable.
func (c Server) Validate() error {
	return vala.BeginValidation().Validate(
		vala.StringNotEmpty(c.Echo.ListenAddress, "SERVER_ECHO_LISTEN_ADDRESS"),
		vala.StringNotEmpty(c.Signer.DefaultNetwork, "SIGNER_DEFAULT_NETWORK"),
		vala.StringNotEmpty(c.Signer.BasePath, "SIGNER_BASE_PATH"),
		vala.GreaterThan(c.Signer.OutcomeBase, 1, "SIGNER_OUTCOME_BASE"),
		vala.GreaterThan(c.Signer.MaxDigits, 0, "SIGNER_MAX_DIGITS"),
		vala.GreaterThan(c.Signer.MaxCets, 0, "SIGNER_MAX_CETS"),
		vala.GreaterThan(c.Signer.MaxKeyContexts, 0, "SIGNER_MAX_KEY_CONTEXTS"),
	).Check()
}

func logLevel(s string, fallback zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		log.Warn().Err(err).Str("level", s).Msg("Unknown log level, using default")
		return fallback
	}
	return level
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// runningTests reports whether the binary is a go test binary.
func runningTests() bool {
	return strings.HasSuffix(os.Args[0], ".test")
}

// projectRoot is the current working directory unless PROJECT_ROOT_DIR is set.
func projectRoot() string {
	if dir := os.Getenv("PROJECT_ROOT_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
