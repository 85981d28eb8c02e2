package cmd

import (
	"time"

	"golang.org/x/text/language"

	"github.com/msto63/hiext/core/config"
	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
	"github.com/msto63/hiext/pkg/markup"
	"github.com/msto63/hiext/utils/timex"
)

// Settings are the typed configuration values of the CLI
type Settings struct {
	LogLevel  hixlog.Level
	LogFormat hixlog.Format
	NoColor   bool

	Trailing       string
	TruncateLength int
	DateFormat     string
	Locale         language.Tag
	Location       *time.Location

	Renderer    string
	StrongSize  float64
	StrongColor markup.Color
}

// LoadSettings reads and validates the settings from cfg
func LoadSettings(cfg *config.Config) (Settings, error) {
	var s Settings
	var err error

	if s.LogLevel, err = hixlog.ParseLevel(cfg.GetString("log.level")); err != nil {
		return s, settingError(cfg, "log.level", err)
	}
	if s.LogFormat, err = hixlog.ParseFormat(cfg.GetString("log.format")); err != nil {
		return s, settingError(cfg, "log.format", err)
	}

	s.NoColor = cfg.GetBool("log.no_color")

	s.Trailing = cfg.GetString("text.trailing")
	s.TruncateLength = cfg.GetInt("text.truncate_length", 10)
	if s.TruncateLength < 0 {
		return s, settingError(cfg, "text.truncate_length",
			hixerror.Newf("length must not be negative, got %d", s.TruncateLength))
	}
	s.DateFormat = cfg.GetString("text.date_format", timex.DefaultPattern)
	if _, err = timex.Layouts(s.DateFormat); err != nil {
		return s, settingError(cfg, "text.date_format", err)
	}
	if s.Locale, err = language.Parse(cfg.GetString("text.locale", "und")); err != nil {
		return s, settingError(cfg, "text.locale", err)
	}
	if s.Location, err = time.LoadLocation(cfg.GetString("text.time_zone", "Local")); err != nil {
		return s, settingError(cfg, "text.time_zone", err)
	}

	s.Renderer = cfg.GetString("markup.renderer", markup.RendererHTML)
	s.StrongSize = cfg.GetFloat("markup.strong_size", 14)
	if s.StrongSize <= 0 {
		return s, settingError(cfg, "markup.strong_size",
			hixerror.Newf("font size must be positive, got %v", s.StrongSize))
	}
	if s.StrongColor, err = markup.ParseColor(cfg.GetString("markup.strong_color", string(markup.Black))); err != nil {
		return s, settingError(cfg, "markup.strong_color", err)
	}

	return s, nil
}

func settingError(cfg *config.Config, key string, err error) error {
	return hixerror.Wrap(err, "invalid setting "+key).
		WithCode(hixerror.CodeConfigError).
		WithOperation("hiext.LoadSettings").
		WithDetail("key", key).
		WithDetail("env", cfg.EnvKey(key))
}
