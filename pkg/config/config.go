// Package config loads runtime options from an optional .env file and the
// ARCHIVE_STREAM_* environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "ARCHIVE_STREAM"

// Config is the resolved set of options.
type Config struct {
	Title           string
	AudioPlayer     string
	AudioDelay      time.Duration
	KillAudioOnExit bool
	DefaultFPS      float64
	FontPath        string
	FontSize        int
	LogLevel        string
	LogJSON         bool
	ShowQR          bool
	PresignExpiry   time.Duration
	PerfLogInterval time.Duration
}

// Load reads envFile (skipped when empty or missing) into the process
// environment and returns the options. Values already set in the environment
// win over the file. Invalid or out of range values fall back to defaults so
// that a bad .env never prevents playback.
func Load(envFile string) Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if os.IsNotExist(err) {
				log.Debugf("Load: no %s file, using environment only", envFile)
			} else {
				log.Warnf("Load: reading %s: %v", envFile, err)
			}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}

	c := Config{
		Title:           v.GetString(KeyTitle),
		AudioPlayer:     v.GetString(KeyAudioPlayer),
		AudioDelay:      v.GetDuration(KeyAudioDelay),
		KillAudioOnExit: v.GetBool(KeyKillAudioOnExit),
		DefaultFPS:      v.GetFloat64(KeyDefaultFPS),
		FontPath:        v.GetString(KeyFontPath),
		FontSize:        v.GetInt(KeyFontSize),
		LogLevel:        v.GetString(KeyLogLevel),
		LogJSON:         v.GetBool(KeyLogJSON),
		ShowQR:          v.GetBool(KeyShowQR),
		PresignExpiry:   v.GetDuration(KeyPresignExpiry),
		PerfLogInterval: v.GetDuration(KeyPerfLogInterval),
	}

	// Replace unusable values with defaults so that a typo in one key does
	// not break the rest.
	if c.Title == "" {
		c.Title = Default[KeyTitle].Value.(string)
	}
	if c.AudioPlayer == "" {
		c.AudioPlayer = Default[KeyAudioPlayer].Value.(string)
	}
	if c.AudioDelay < 0 {
		c.AudioDelay = Default[KeyAudioDelay].Value.(time.Duration)
	}
	if c.DefaultFPS <= 0 {
		c.DefaultFPS = float64(Default[KeyDefaultFPS].Value.(int))
	}
	if c.FontSize <= 0 {
		c.FontSize = Default[KeyFontSize].Value.(int)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		log.Warnf("Load: unknown log level %q, using info", c.LogLevel)
		c.LogLevel = Default[KeyLogLevel].Value.(string)
	}
	if c.PresignExpiry <= 0 {
		c.PresignExpiry = Default[KeyPresignExpiry].Value.(time.Duration)
	}
	if c.PerfLogInterval < 0 {
		c.PerfLogInterval = 0
	}
	return c
}

// ConfigureLogging applies the level and format options to the standard
// logrus logger.
func (c Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
