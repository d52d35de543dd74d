// Package logger builds the slog logger used by the CLI.
package logger

import (
	"io"
	"log/slog"

	"github.com/amirasaad/propdesc/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a slog.Logger backed by a styled charmbracelet handler and
// installs it as the slog default.
func New(w io.Writer, cfg config.Log) *slog.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles())

	slogger := slog.New(handler)
	slog.SetDefault(slogger)
	return slogger
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := map[log.Level]lipgloss.AdaptiveColor{
		log.DebugLevel: debugTxtColor,
		log.InfoLevel:  infoTxtColor,
		log.WarnLevel:  warnTxtColor,
		log.ErrorLevel: errorTxtColor,
	}
	for lvl, color := range levels {
		s.Levels[lvl] = lipgloss.NewStyle().
			SetString(lvl.String()).
			Bold(true).
			MaxWidth(5).
			Foreground(color)
	}

	s.Keys["err"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	s.Values["err"] = lipgloss.NewStyle().Bold(true)
	s.Keys["key"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	s.Keys["flag"] = lipgloss.NewStyle().Foreground(debugTxtColor)
	return s
}
