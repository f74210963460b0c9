// Package datefmt implements the datefmt command: current date and time
// strings, period subtraction and locale notation conversion.
package datefmt

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/localdate/internal/platform/cmd"
	"github.com/louisbranch/localdate/internal/platform/dates"
	"github.com/louisbranch/localdate/internal/platform/i18n/locale"
)

// Modes accepted by -mode.
const (
	ModeDate      = "date"
	ModeTime      = "time"
	ModeDateTime  = "datetime"
	ModeSubtract  = "subtract"
	ModeCLDRToBCP = "cldr2bcp47"
	ModeBCPToCLDR = "bcp472cldr"
	ModeLocales   = "locales"
)

const dateFlagLayout = time.DateOnly

// Config holds configuration for one datefmt invocation.
type Config struct {
	Mode     string `env:"LOCALDATE_MODE" envDefault:"date"`
	Locale   string `env:"LOCALDATE_LOCALE"`
	Period   string
	Date     string
	Value    string
	LogLevel string `env:"LOCALDATE_LOG_LEVEL" envDefault:"warn"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Mode, "mode", ModeDate, "date, time, datetime, subtract, cldr2bcp47, bcp472cldr or locales")
	fs.StringVar(&cfg.Locale, "locale", "", "locale for date/time modes (CLDR or BCP47); empty uses the OS locale")
	fs.StringVar(&cfg.Period, "period", "", "period for subtract mode: "+periodNames())
	fs.StringVar(&cfg.Date, "date", "", "YYYY-MM-DD start date for subtract mode (default: today)")
	fs.StringVar(&cfg.Value, "value", "", "locale string for conversion modes")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "debug, info, warn or error")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func periodNames() string {
	periods := dates.Periods()
	names := make([]string, len(periods))
	for i, p := range periods {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Run executes the configured mode and writes the result to out.
func Run(cfg Config, out io.Writer, formatter *dates.Formatter, logger *slog.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if formatter == nil {
		formatter = dates.NewFormatter()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	result, err := render(cfg, formatter, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}

func render(cfg Config, formatter *dates.Formatter, logger *slog.Logger) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch mode {
	case ModeDate, ModeTime, ModeDateTime:
		logger.Debug("rendering current value", "mode", mode, "locale", formatter.Resolve(cfg.Locale).Locale)
		switch mode {
		case ModeDate:
			return formatter.CurrentDate(cfg.Locale)
		case ModeTime:
			return formatter.CurrentTime(cfg.Locale)
		default:
			return formatter.CurrentDateTime(cfg.Locale)
		}
	case ModeSubtract:
		return subtract(cfg, logger)
	case ModeCLDRToBCP:
		return locale.CLDRToBCP47(cfg.Value), nil
	case ModeBCPToCLDR:
		return locale.BCP47ToCLDR(cfg.Value), nil
	case ModeLocales:
		return supportedLocales(), nil
	default:
		return "", fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// supportedLocales lists one "CLDR<TAB>BCP47" pair per line.
func supportedLocales() string {
	supported := locale.Supported()
	lines := make([]string, 0, len(supported))
	for _, l := range supported {
		lines = append(lines, string(l)+"\t"+locale.CLDRToBCP47(string(l)))
	}
	return strings.Join(lines, "\n")
}

func subtract(cfg Config, logger *slog.Logger) (string, error) {
	start := time.Now()
	if value := strings.TrimSpace(cfg.Date); value != "" {
		parsed, err := time.Parse(dateFlagLayout, value)
		if err != nil {
			return "", fmt.Errorf("parse date: %w", err)
		}
		start = parsed
	}
	period, ok := dates.ParsePeriod(cfg.Period)
	if !ok {
		// Unrecognized periods leave the date unchanged.
		logger.Warn("unrecognized period", "period", cfg.Period)
		period = dates.Period(cfg.Period)
	}
	return dates.Subtract(start, period).Format(dateFlagLayout), nil
}
