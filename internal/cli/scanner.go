package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"WeRadiate.thermoq/internal/config"
	"WeRadiate.thermoq/internal/devices"
	"WeRadiate.thermoq/internal/models"
)

// ErrHelp is returned when -h is scanned; the caller prints the usage
// text and exits successfully.
var ErrHelp = errors.New("help requested")

// ErrVersion is returned when -V is scanned; the caller prints the
// version and exits successfully.
var ErrVersion = errors.New("version requested")

// Scanner walks the argument list once, left to right, applying each
// flag to the configuration record as it is seen. Order matters: a
// later flag overwrites whatever an earlier one set, and -t rederives
// the where clause from the probe resolved so far.
type Scanner struct {
	cfg      *config.Config
	log      zerolog.Logger
	polarity bool
}

// NewScanner creates a Scanner that mutates cfg in place.
func NewScanner(cfg *config.Config, log zerolog.Logger) *Scanner {
	return &Scanner{
		cfg:      cfg,
		log:      log,
		polarity: true,
	}
}

// Scan consumes args. On a nil return the configuration is final.
// ErrHelp and ErrVersion short-circuit the scan; any other error is
// fatal to the invocation.
func (s *Scanner) Scan(args []string) error {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-h":
			return ErrHelp
		case "-V":
			return ErrVersion
		case "-n":
			s.polarity = false
			s.log.Debug().Str("flag", arg).Msg("negating next boolean flag")
		case "-v", "-nv":
			s.cfg.Verbose = s.boolValue(arg == "-nv")
			s.trace(arg, strconv.FormatBool(s.cfg.Verbose))
		case "-D", "-nD":
			s.cfg.Debug = s.boolValue(arg == "-nD")
			s.log = s.log.Level(traceLevel(s.cfg.Debug))
			s.trace(arg, strconv.FormatBool(s.cfg.Debug))
		case "-p", "-np":
			s.cfg.Pretty = s.boolValue(arg == "-np")
			s.trace(arg, strconv.FormatBool(s.cfg.Pretty))
		case "-d", "-f", "-g", "-q", "-r", "-S", "-s", "-t", "-u", "-w", "-z":
			if i++; i >= len(args) {
				return models.NewCLIError(models.ErrorCodeUsage,
					fmt.Sprintf("flag %s requires a value", arg), nil, 1)
			}
			if err := s.setValue(arg, args[i]); err != nil {
				return err
			}
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return models.NewCLIError(models.ErrorCodeUsage,
					fmt.Sprintf("unrecognized flag %s", arg), nil, 1)
			}
			return models.NewCLIError(models.ErrorCodeUsage,
				fmt.Sprintf("unexpected argument %q", arg), nil, 1)
		}
	}
	return nil
}

// boolValue yields the value the boolean flag being scanned stores:
// false for the combined -nX forms, otherwise whatever the polarity
// latch holds. The latch always resets afterward.
func (s *Scanner) boolValue(negated bool) bool {
	v := s.polarity
	s.polarity = true
	if negated {
		return false
	}
	return v
}

// setValue applies one value flag. -r resolves the alias immediately
// so a later -t derives the where clause from the right identifier.
func (s *Scanner) setValue(flag, value string) error {
	switch flag {
	case "-d":
		s.cfg.Database = value
	case "-f":
		s.cfg.Fill = value
	case "-g":
		s.cfg.GroupBy = value
	case "-q":
		s.cfg.Vars = value
	case "-r":
		id, err := devices.Resolve(value)
		if err != nil {
			return err
		}
		s.cfg.Probe = id
	case "-S":
		s.cfg.Server = value
	case "-s":
		s.cfg.Series = value
	case "-t":
		days, err := strconv.Atoi(value)
		if err != nil || days < 0 {
			return models.NewCLIError(models.ErrorCodeInvalidDayCount,
				fmt.Sprintf("invalid day count %q", value), err, 1)
		}
		s.cfg.SetDays(days)
		s.log.Debug().Str("flag", flag).Str("value", value).Str("where", s.cfg.Where).Msg("flag applied")
		return nil
	case "-u":
		s.cfg.User = value
	case "-w":
		s.cfg.Where = value
	case "-z":
		s.cfg.Timezone = value
	}
	s.trace(flag, value)
	return nil
}

func (s *Scanner) trace(flag, value string) {
	s.log.Debug().Str("flag", flag).Str("value", value).Msg("flag applied")
}

func traceLevel(on bool) zerolog.Level {
	if on {
		return zerolog.DebugLevel
	}
	return zerolog.ErrorLevel
}
