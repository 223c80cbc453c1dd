package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-term/models"
	"weather-term/render"
)

func envMap(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, s Settings)
	}{
		{"defaults", nil, func(t *testing.T, s Settings) {
			if s.Mode != ModeShort || s.Unit != models.Fahrenheit || !s.Color || s.Coordinates != nil {
				t.Errorf("unexpected defaults: %+v", s)
			}
		}},
		{"celsius", []string{"-c"}, func(t *testing.T, s Settings) {
			if s.Unit != models.Celsius {
				t.Errorf("Unit = %s", s.Unit)
			}
		}},
		{"fahrenheit shorthand", []string{"-f"}, func(t *testing.T, s Settings) {
			if s.Unit != models.Fahrenheit || s.ForceRefresh {
				t.Errorf("-f should only select Fahrenheit: %+v", s)
			}
		}},
		{"week", []string{"--week"}, func(t *testing.T, s Settings) {
			if s.Mode != ModeWeek {
				t.Errorf("Mode = %s", s.Mode)
			}
		}},
		{"long is day", []string{"-l"}, func(t *testing.T, s Settings) {
			if s.Mode != ModeDay {
				t.Errorf("Mode = %s", s.Mode)
			}
		}},
		{"refresh", []string{"-r"}, func(t *testing.T, s Settings) {
			if !s.ForceRefresh {
				t.Error("ForceRefresh not set")
			}
		}},
		{"force-refresh", []string{"--force-refresh"}, func(t *testing.T, s Settings) {
			if !s.ForceRefresh {
				t.Error("ForceRefresh not set")
			}
		}},
		{"no color", []string{"--no-color"}, func(t *testing.T, s Settings) {
			if s.Color {
				t.Error("Color still on")
			}
		}},
		{"emoji style", []string{"--emoji-tech"}, func(t *testing.T, s Settings) {
			if s.Style != render.StyleTech {
				t.Errorf("Style = %s", s.Style)
			}
		}},
		{"combined shorthands", []string{"-qcd"}, func(t *testing.T, s Settings) {
			if !s.Quiet || s.Unit != models.Celsius || s.Mode != ModeDay {
				t.Errorf("unexpected settings: %+v", s)
			}
		}},
		{"negative coordinates", []string{"-33.9249:18.4241"}, func(t *testing.T, s Settings) {
			if s.Coordinates == nil || s.Coordinates.Latitude != -33.9249 || s.Coordinates.Longitude != 18.4241 {
				t.Errorf("Coordinates = %+v", s.Coordinates)
			}
		}},
		{"coordinates among flags", []string{"--runtime-info", "40.7:-74", "-w"}, func(t *testing.T, s Settings) {
			if s.Coordinates == nil || s.Coordinates.Longitude != -74 || s.Mode != ModeWeek || !s.RuntimeInfo {
				t.Errorf("unexpected settings: %+v", s)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, action, err := ParseArgs(tc.args, Default())
			if err != nil || action != ActionRun {
				t.Fatalf("ParseArgs(%v) = %v, %v", tc.args, action, err)
			}
			tc.check(t, s)
		})
	}
}

func TestParseArgsActions(t *testing.T) {
	tests := []struct {
		args    []string
		want    Action
		wantErr bool
	}{
		{[]string{"--help"}, ActionHelp, false},
		{[]string{"-h", "-c"}, ActionHelp, false},
		{[]string{"--version"}, ActionVersion, false},
		{[]string{"--bogus"}, ActionUnknown, true},
		{[]string{"-x"}, ActionUnknown, true},
		{[]string{"stray"}, ActionUnknown, true},
	}

	for _, tc := range tests {
		_, action, err := ParseArgs(tc.args, Default())
		if action != tc.want || (err != nil) != tc.wantErr {
			t.Errorf("ParseArgs(%v) = %v, %v; want %v", tc.args, action, err, tc.want)
		}
	}
}

func TestParseArgsInvalidCoordinates(t *testing.T) {
	tests := []struct {
		arg  string
		axis models.Axis
	}{
		{"91:0", models.AxisLatitude},
		{"-90.5:0", models.AxisLatitude},
		{"0:181", models.AxisLongitude},
		{"100:200", models.AxisLatitude},
	}

	for _, tc := range tests {
		_, action, err := ParseArgs([]string{tc.arg}, Default())
		var invalid *models.InvalidCoordinatesError
		if action != ActionRun || !errors.As(err, &invalid) {
			t.Errorf("ParseArgs(%s) = %v, %v; want InvalidCoordinatesError", tc.arg, action, err)
			continue
		}
		if invalid.Axis != tc.axis {
			t.Errorf("ParseArgs(%s) axis = %s; want %s", tc.arg, invalid.Axis, tc.axis)
		}
	}

	if _, _, err := ParseArgs([]string{"1..2:3"}, Default()); err == nil {
		t.Error("malformed coordinates should fail")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePrecedence(t *testing.T) {
	path := writeFile(t, "config.yaml", `
units: celsius
emoji: classic
mode: day
hours_before: 3
timeout: 5s
cache_path: /tmp/from-file.json
default_location:
  latitude: 48.8566
  longitude: 2.3522
  timezone: Europe/Paris
`)

	env := envMap(map[string]string{
		EnvConfig:    path,
		EnvEmoji:     "tech",
		EnvCachePath: "/tmp/from-env.json",
	})

	s, action, err := Resolve([]string{"-f"}, env)
	if err != nil || action != ActionRun {
		t.Fatalf("Resolve() = %v, %v", action, err)
	}

	if s.Unit != models.Fahrenheit {
		t.Errorf("flag should win: Unit = %s", s.Unit)
	}
	if s.Style != render.StyleTech {
		t.Errorf("env should win over file: Style = %s", s.Style)
	}
	if s.CachePath != "/tmp/from-env.json" {
		t.Errorf("CachePath = %s", s.CachePath)
	}
	if s.Mode != ModeDay || s.HoursBefore != 3 || s.HoursAfter != DefaultHoursAfter {
		t.Errorf("file values lost: %+v", s)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s", s.Timeout)
	}
	want := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	if s.DefaultLocation.Coordinates != want || s.DefaultLocation.Timezone != "Europe/Paris" {
		t.Errorf("DefaultLocation = %+v", s.DefaultLocation)
	}
}

func TestResolveNoColor(t *testing.T) {
	env := envMap(map[string]string{
		EnvConfig:  writeFile(t, "config.yaml", "color: true\n"),
		EnvNoColor: "1",
	})
	s, _, err := Resolve(nil, env)
	if err != nil {
		t.Fatal(err)
	}
	if s.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestResolveErrors(t *testing.T) {
	tests := map[string]func(*testing.T) map[string]string{
		"explicit config missing": func(t *testing.T) map[string]string {
			return map[string]string{EnvConfig: filepath.Join(t.TempDir(), "absent.yaml")}
		},
		"malformed yaml": func(t *testing.T) map[string]string {
			return map[string]string{EnvConfig: writeFile(t, "c.yaml", "units: [celsius\n")}
		},
		"bad unit in file": func(t *testing.T) map[string]string {
			return map[string]string{EnvConfig: writeFile(t, "c.yaml", "units: kelvin\n")}
		},
		"out of range hours": func(t *testing.T) map[string]string {
			return map[string]string{EnvConfig: writeFile(t, "c.yaml", "hours_before: 30\n")}
		},
		"bad emoji in env": func(t *testing.T) map[string]string {
			return map[string]string{EnvConfig: writeFile(t, "c.yaml", ""), EnvEmoji: "sparkles"}
		},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Resolve(nil, envMap(env(t))); err == nil {
				t.Error("Resolve() should fail")
			}
		})
	}
}

func TestResolveMissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if _, _, err := Resolve(nil, envMap(nil)); err != nil {
		t.Errorf("Resolve() error = %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "WEATHER_TERM_DOTENV_TEST"
	path := writeFile(t, ".env", key+"=celsius\n")
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(key); got != "celsius" {
		t.Errorf("%s = %q", key, got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"short": ModeShort, "long": ModeDay, "day": ModeDay, "week": ModeWeek} {
		if got, err := ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("month"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
