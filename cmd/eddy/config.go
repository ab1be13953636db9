package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/joeycumines/go-eddy"
	"github.com/joeycumines/logiface"
)

const (
	envLogFile  = `EDDY_LOG_FILE`
	envLogLevel = `EDDY_LOG_LEVEL`
)

type config struct {
	prompt    string
	lineCap   int
	erasePrev byteFlag
	eraseAt   byteFlag
	logFile   string
	logLevel  logiface.Level
	logFormat string
}

// byteFlag accepts any strconv.ParseUint base 0 literal, e.g. 127 or 0x7f.
type byteFlag byte

func (x *byteFlag) String() string { return fmt.Sprintf(`0x%02x`, byte(*x)) }

func (x *byteFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return err
	}
	*x = byteFlag(v)
	return nil
}

// parseConfig parses command line args, falling back to the environment for
// the log file and level.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (*config, error) {
	keys := eddy.DefaultKeyCodes()
	cfg := config{
		erasePrev: byteFlag(keys.ErasePrevious),
		eraseAt:   byteFlag(keys.EraseAtCursor),
	}

	var logLevel string

	fs := flag.NewFlagSet(`eddy`, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.prompt, `prompt`, `eddy> `, `prompt, at most 7 bytes`)
	fs.IntVar(&cfg.lineCap, `line-cap`, eddy.DefaultLineCapacity, `line capacity, including one reserved byte`)
	fs.Var(&cfg.erasePrev, `erase-prev`, `key code that erases the previous character`)
	fs.Var(&cfg.eraseAt, `erase-at`, `key code that erases the character at the cursor`)
	fs.StringVar(&cfg.logFile, `log-file`, getenv(envLogFile), `append diagnostics to this file (env `+envLogFile+`)`)
	fs.StringVar(&logLevel, `log-level`, getenv(envLogLevel), `log level, e.g. debug, info, err (env `+envLogLevel+`)`)
	fs.StringVar(&cfg.logFormat, `log-format`, `json`, `log format, one of json, zerolog, console`)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf(`unexpected arguments: %q`, fs.Args())
	}

	if logLevel == `` {
		cfg.logLevel = logiface.LevelInformational
	} else if level, ok := parseLevel(logLevel); ok {
		cfg.logLevel = level
	} else {
		return nil, fmt.Errorf(`invalid log level: %q`, logLevel)
	}

	switch cfg.logFormat {
	case `json`, `zerolog`, `console`:
	default:
		return nil, fmt.Errorf(`invalid log format: %q`, cfg.logFormat)
	}

	if cfg.erasePrev == cfg.eraseAt {
		return nil, errors.New(`erase-prev and erase-at must differ`)
	}

	return &cfg, nil
}

func parseLevel(s string) (logiface.Level, bool) {
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if level.String() == s {
			return level, true
		}
	}
	return 0, false
}

func (x *config) editorOptions() []eddy.Option {
	return []eddy.Option{
		eddy.WithPrompt(x.prompt),
		eddy.WithLineCapacity(x.lineCap),
		eddy.WithKeyCodes(eddy.KeyCodes{
			ErasePrevious: byte(x.erasePrev),
			EraseAtCursor: byte(x.eraseAt),
		}),
	}
}
