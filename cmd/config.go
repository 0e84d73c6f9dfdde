package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"pathenum.dev/pkg/pathenum/internal/domain"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "pathenum"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName     = "root"
	extFlagName      = "ext"
	prefixFlagName   = "prefix"
	dotFlagName      = "dot"
	casingFlagName   = "casing"
	parallelFlagName = "parallel"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"

	parallelConfigKey = "scan.parallel"
	setsConfigKey     = "sets"

	defaultParallel = 1

	envPrefix = "PATHENUM"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".pathenum.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	stderrLogFilename = "-"
)

// knownConfigKeys lists every key pathenum.yaml may contain outside of sets.
var knownConfigKeys = []string{
	configVersionKey,
	rootFlagName, extFlagName, prefixFlagName, dotFlagName, casingFlagName,
	parallelConfigKey, setsConfigKey,
	logFilenameKey, logLevelKey, logVerboseKey, logMaxSizeKey, logMaxBackupsKey, logMaxAgeKey, logCompressKey,
}

var errNoSets = errors.New("no set given on the command line and none configured in " + configFileName)

var globalLogger *slog.Logger

// configReadErr is reported by the first command run after a malformed
// pathenum.yaml was read.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	configReadErr = readConfig()
}

// readConfig loads pathenum.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return &domain.ConfigError{Option: configFileName, Err: err}
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootFlagName, domain.DefaultRoot)
	viper.SetDefault(extFlagName, domain.DefaultExtension)
	viper.SetDefault(prefixFlagName, "")
	viper.SetDefault(dotFlagName, string(m.DotMarker))
	viper.SetDefault(casingFlagName, string(m.CasingUnicode))
	viper.SetDefault(parallelConfigKey, defaultParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// validateConfigKeys rejects unknown options and config versions before any
// directory is scanned.
func validateConfigKeys() error {
	if configReadErr != nil {
		return configReadErr
	}

	for _, key := range viper.AllKeys() {
		if slices.Contains(knownConfigKeys, key) || strings.HasPrefix(key, setsConfigKey+".") {
			continue
		}

		return &domain.ConfigError{Option: key, Err: errors.New("unknown option")}
	}

	version, err := cast.ToIntE(viper.Get(configVersionKey))
	if err != nil {
		return &domain.ConfigError{Option: configVersionKey, Err: err}
	}

	if version != currentConfigVersion {
		return &domain.ConfigError{
			Option: configVersionKey,
			Err:    fmt.Errorf("unsupported version %d (want %d)", version, currentConfigVersion),
		}
	}

	return nil
}

// scanParallelism reads scan.parallel, rejecting values that are not
// non-negative integers.
func scanParallelism() (int, error) {
	parallel, err := cast.ToIntE(viper.Get(parallelConfigKey))
	if err != nil {
		return 0, &domain.ConfigError{Option: parallelConfigKey, Err: err}
	}

	if parallel < 0 {
		return 0, &domain.ConfigError{Option: parallelConfigKey, Err: fmt.Errorf("must not be negative, got %d", parallel)}
	}

	return parallel, nil
}

// flagSetConfig describes the single set given on the command line.
func flagSetConfig(name, pkg, output string) m.SetConfig {
	return m.SetConfig{
		Name:    name,
		Package: pkg,
		Output:  output,
		Root:    viper.GetString(rootFlagName),
		Ext:     viper.GetString(extFlagName),
		Prefix:  viper.GetString(prefixFlagName),
		Dot:     viper.GetString(dotFlagName),
		Casing:  viper.GetString(casingFlagName),
	}
}

// configuredSets decodes the sets list of pathenum.yaml. Unknown keys in a
// set are errors; blank scan options fall back to the global ones.
func configuredSets() ([]m.SetConfig, error) {
	if !viper.IsSet(setsConfigKey) {
		return nil, nil
	}

	var sets []m.SetConfig

	err := viper.UnmarshalKey(setsConfigKey, &sets, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	})
	if err != nil {
		return nil, &domain.ConfigError{Option: setsConfigKey, Err: err}
	}

	global := flagSetConfig("", "", "")

	for i := range sets {
		sets[i].Root = fallback(sets[i].Root, global.Root)
		sets[i].Ext = fallback(sets[i].Ext, global.Ext)
		sets[i].Prefix = fallback(sets[i].Prefix, global.Prefix)
		sets[i].Dot = fallback(sets[i].Dot, global.Dot)
		sets[i].Casing = fallback(sets[i].Casing, global.Casing)
		sets[i].Package = fallback(sets[i].Package, os.Getenv("GOPACKAGE"))
	}

	return sets, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var logWriter io.Writer = os.Stderr
	if logPath != stderrLogFilename {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	// Create a new logger with the file handler and set it as the global logger
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
