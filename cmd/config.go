package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"snare.dev/pkg/snare/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "snare"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName       = "output"
	runParallelFlagName  = "parallel"
	phaseTimeoutFlagName = "timeout"
	tempRootFlagName     = "temp-root"
	warmCacheFlagName    = "warm-cache"
	olderThanFlagName    = "older-than"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"

	runParallelConfigKey         = "run.parallel"
	phaseTimeoutConfigKey        = "run.phase_timeout"
	tempRootConfigKey            = "run.temp_root"
	commandConfigKey             = "run.command"
	warmCacheConfigKey           = "run.warm_cache"
	maxOutputConfigKey           = "run.max_output_bytes"
	timeoutCountsAsKillConfigKey = "run.timeout_counts_as_kill"
	manifestsConfigKey           = "project.manifests"
	skipDirsConfigKey            = "project.skip_dirs"
	nonPublicQuotaConfigKey      = "gate.non_public_quota"
	authorCommandConfigKey       = "author.command"
	authorRateConfigKey          = "author.rate"
	authorTimeoutConfigKey       = "author.timeout"

	defaultPhaseTimeout   = time.Minute
	defaultAuthorTimeout  = time.Minute * 5
	defaultReportsDir     = ".snare-reports"
	defaultRunParallel    = 3
	defaultMaxOutputBytes = 256 << 10
	defaultNonPublicQuota = 2
	defaultAuthorRate     = 1.0
	defaultPruneOlderThan = time.Hour

	envPrefix = "SNARE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".snare.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultCommand = []string{"go", "test", "-count=1", "./..."}

var defaultManifests = []string{"go.mod"}

var globalLogger *slog.Logger

func init() {
	// .env values feed the SNARE_* environment before viper reads it.
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(phaseTimeoutConfigKey, defaultPhaseTimeout)
	viper.SetDefault(tempRootConfigKey, "")
	viper.SetDefault(commandConfigKey, defaultCommand)
	viper.SetDefault(warmCacheConfigKey, "")
	viper.SetDefault(maxOutputConfigKey, defaultMaxOutputBytes)
	viper.SetDefault(timeoutCountsAsKillConfigKey, false)
	viper.SetDefault(manifestsConfigKey, defaultManifests)
	viper.SetDefault(skipDirsConfigKey, adapter.DefaultSkipDirs)
	viper.SetDefault(nonPublicQuotaConfigKey, defaultNonPublicQuota)
	viper.SetDefault(authorCommandConfigKey, []string{})
	viper.SetDefault(authorRateConfigKey, defaultAuthorRate)
	viper.SetDefault(authorTimeoutConfigKey, defaultAuthorTimeout)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "error", err)
		}
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
