package config

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"weather-term/models"
	"weather-term/render"
)

// Action tells the caller what to do after parsing
type Action int

// Parse outcomes
const (
	ActionRun Action = iota
	ActionHelp
	ActionVersion
	// ActionUnknown means an unrecognized flag or argument; the caller prints
	// the error and exits successfully
	ActionUnknown
)

// coordinateArg recognizes a LAT:LON positional. It is matched before flag
// parsing because a negative latitude looks like a shorthand flag.
var coordinateArg = regexp.MustCompile(`^[-+]?[0-9.]+:[-+]?[0-9.]+$`)

type flagValues struct {
	help, version            bool
	quiet, runtimeInfo       bool
	short, long, day, week   bool
	refresh, forceRefresh    bool
	noColor                  bool
	fahrenheit, celsius      bool
	emojiNF, emojiClassic    bool
	emojiOriginal, emojiTech bool
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("weather-term", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&v.help, "help", "h", false, "show this help and exit")
	fs.BoolVar(&v.version, "version", false, "print the version and exit")
	fs.BoolVarP(&v.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&v.short, "short", "s", false, "one-line summary (default)")
	fs.BoolVarP(&v.long, "long", "l", false, "same as --day")
	fs.BoolVarP(&v.day, "day", "d", false, "hourly table around now")
	fs.BoolVarP(&v.week, "week", "w", false, "one row per forecast day")
	fs.BoolVarP(&v.refresh, "refresh", "r", false, "ignore the cache and fetch a new forecast")
	fs.BoolVar(&v.forceRefresh, "force-refresh", false, "same as --refresh")
	fs.BoolVar(&v.noColor, "no-color", false, "disable colors")
	fs.BoolVar(&v.runtimeInfo, "runtime-info", false, "print timing and cache details to stderr")
	fs.BoolVarP(&v.fahrenheit, "fahrenheit", "f", false, "temperatures in °F, wind in mph")
	fs.BoolVarP(&v.celsius, "celsius", "c", false, "temperatures in °C, wind in km/h")
	fs.BoolVar(&v.emojiNF, "emoji-nf", false, "Nerd Font weather glyphs")
	fs.BoolVar(&v.emojiClassic, "emoji-classic", false, "emoji weather glyphs")
	fs.BoolVar(&v.emojiOriginal, "emoji-original", false, "plain text labels")
	fs.BoolVar(&v.emojiTech, "emoji-tech", false, "METAR-style abbreviations")
	return fs
}

// Usage returns the help text
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: weather-term [flags] [LAT:LON]\n\n")
	b.WriteString("Shows the weather for your IP location, or for LAT:LON.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(newFlagSet(&flagValues{}).FlagUsages())
	return b.String()
}

// ParseCoordinates parses a LAT:LON argument
func ParseCoordinates(arg string) (models.Coordinates, error) {
	latText, lonText, ok := strings.Cut(arg, ":")
	if !ok {
		return models.Coordinates{}, fmt.Errorf("invalid coordinates %q: want LAT:LON", arg)
	}
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", latText, err)
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", lonText, err)
	}
	return models.NewCoordinates(lat, lon)
}

// ParseArgs applies command-line arguments, without the program name, on top
// of s
func ParseArgs(args []string, s Settings) (Settings, Action, error) {
	var rest []string
	var coords string
	for _, a := range args {
		if coordinateArg.MatchString(a) {
			coords = a
			continue
		}
		rest = append(rest, a)
	}

	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(rest); err != nil {
		return s, ActionUnknown, err
	}
	if v.help {
		return s, ActionHelp, nil
	}
	if v.version {
		return s, ActionVersion, nil
	}
	if fs.NArg() > 0 {
		return s, ActionUnknown, fmt.Errorf("unrecognized argument %q", fs.Arg(0))
	}

	if coords != "" {
		c, err := ParseCoordinates(coords)
		if err != nil {
			return s, ActionRun, err
		}
		s.Coordinates = &c
	}

	switch {
	case v.week:
		s.Mode = ModeWeek
	case v.day, v.long:
		s.Mode = ModeDay
	case v.short:
		s.Mode = ModeShort
	}

	switch {
	case v.celsius:
		s.Unit = models.Celsius
	case v.fahrenheit:
		s.Unit = models.Fahrenheit
	}

	switch {
	case v.emojiTech:
		s.Style = render.StyleTech
	case v.emojiOriginal:
		s.Style = render.StyleOriginal
	case v.emojiClassic:
		s.Style = render.StyleClassic
	case v.emojiNF:
		s.Style = render.StyleNF
	}

	if v.refresh || v.forceRefresh {
		s.ForceRefresh = true
	}
	if v.noColor {
		s.Color = false
	}
	if v.quiet {
		s.Quiet = true
	}
	if v.runtimeInfo {
		s.RuntimeInfo = true
	}
	return s, ActionRun, nil
}

// Resolve builds the run's settings from defaults, the config file, the
// environment and the command line, each overriding the one before
func Resolve(args []string, getenv func(string) string) (Settings, Action, error) {
	s := Default()

	path, explicit := getenv(EnvConfig), true
	if path == "" {
		explicit = false
		if p, err := DefaultFilePath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := applyFile(&s, path, explicit); err != nil {
			return s, ActionRun, fmt.Errorf("config file: %w", err)
		}
	}

	if err := ApplyEnv(&s, getenv); err != nil {
		return s, ActionRun, fmt.Errorf("environment: %w", err)
	}

	s, action, err := ParseArgs(args, s)
	if err != nil || action != ActionRun {
		return s, action, err
	}
	if err := s.Validate(); err != nil {
		return s, ActionRun, err
	}
	return s, ActionRun, nil
}
