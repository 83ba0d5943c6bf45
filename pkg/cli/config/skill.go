package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const (
	// UTC offsets in the world range from -12:00 to +14:00
	minUTCOffset = -12 * 60
	maxUTCOffset = 14 * 60

	defaultRequestTolerance = 150 * time.Second
)

type Skill struct {
	appID      string
	utcOffset  int
	configPath string
	tolerance  time.Duration
}

func (x *Skill) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "alexa-app-id",
			Usage:       "Alexa skill application ID. Requests for other skills are rejected when set",
			Category:    "Skill",
			Destination: &x.appID,
			Sources:     cli.EnvVars("SLACKVOICE_ALEXA_APP_ID"),
		},
		&cli.IntFlag{
			Name:        "utc-offset",
			Usage:       "Fallback UTC offset in minutes, used when the device location is unavailable",
			Category:    "Skill",
			Destination: &x.utcOffset,
			Sources:     cli.EnvVars("SLACKVOICE_UTC_OFFSET"),
		},
		&cli.StringFlag{
			Name:        "skill-config",
			Usage:       "Path to a TOML file with additional status keywords",
			Category:    "Skill",
			Destination: &x.configPath,
			Sources:     cli.EnvVars("SLACKVOICE_SKILL_CONFIG"),
		},
		&cli.DurationFlag{
			Name:        "request-tolerance",
			Usage:       "Maximum allowed age of an incoming request",
			Category:    "Skill",
			Value:       defaultRequestTolerance,
			Destination: &x.tolerance,
			Sources:     cli.EnvVars("SLACKVOICE_REQUEST_TOLERANCE"),
		},
	}
}

func (x Skill) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app-id", x.appID),
		slog.Int("utc-offset", x.utcOffset),
		slog.String("skill-config", x.configPath),
		slog.Duration("request-tolerance", x.tolerance),
	)
}

// AppID returns the configured skill application ID, empty to accept any
func (x *Skill) AppID() string {
	return x.appID
}

// RequestTolerance returns the maximum allowed request age
func (x *Skill) RequestTolerance() time.Duration {
	return x.tolerance
}

// FallbackOffset returns the validated fallback UTC offset
func (x *Skill) FallbackOffset() (model.UTCOffset, error) {
	if x.utcOffset < minUTCOffset || x.utcOffset > maxUTCOffset {
		return 0, goerr.Wrap(ErrInvalidUTCOffset, "fallback UTC offset out of range",
			goerr.V("utc_offset", x.utcOffset))
	}
	return model.UTCOffset(x.utcOffset), nil
}

// StatusTable returns the built-in status table extended with the keywords of the
// skill configuration file, if one is set
func (x *Skill) StatusTable() (*model.StatusTable, error) {
	if x.configPath == "" {
		return model.NewStatusTable(), nil
	}

	file, err := LoadSkillFile(x.configPath)
	if err != nil {
		return nil, err
	}
	return model.NewStatusTable(file.StatusEntries()...), nil
}

// Validate checks every setting without building anything
func (x *Skill) Validate() error {
	if x.tolerance <= 0 {
		return goerr.Wrap(ErrInvalidTolerance, "invalid request tolerance",
			goerr.V("tolerance", x.tolerance.String()))
	}
	if _, err := x.FallbackOffset(); err != nil {
		return err
	}
	if _, err := x.StatusTable(); err != nil {
		return err
	}
	return nil
}

// SkillFile is the skill configuration file
type SkillFile struct {
	Statuses []StatusConfig `toml:"status"`
}

// StatusConfig is an additional status keyword
type StatusConfig struct {
	Keyword string `toml:"keyword"`
	Text    string `toml:"text"`
	Icon    string `toml:"icon"`
}

// Validate checks if the StatusConfig is valid
func (s *StatusConfig) Validate() error {
	if strings.TrimSpace(s.Keyword) == "" {
		return goerr.Wrap(ErrMissingKeyword, "status keyword is empty")
	}
	if s.Text == "" {
		return goerr.Wrap(ErrMissingText, "status text is empty", goerr.V(KeywordKey, s.Keyword))
	}
	if s.Icon != "" && (len(s.Icon) < 3 || !strings.HasPrefix(s.Icon, ":") || !strings.HasSuffix(s.Icon, ":")) {
		return goerr.Wrap(ErrInvalidIcon, "status icon is not an emoji code",
			goerr.V(KeywordKey, s.Keyword), goerr.V("icon", s.Icon))
	}
	return nil
}

// Validate checks if the SkillFile is valid
func (f *SkillFile) Validate() error {
	keywords := make(map[string]bool)
	for i, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid status", goerr.V(StatusIndexKey, i))
		}
		kw := strings.ToLower(strings.TrimSpace(s.Keyword))
		if keywords[kw] {
			return goerr.Wrap(ErrDuplicateKeyword, "status keyword defined twice",
				goerr.V(KeywordKey, s.Keyword), goerr.V(StatusIndexKey, i))
		}
		keywords[kw] = true
	}
	return nil
}

// StatusEntries converts the configured statuses to table entries in file order.
// Statuses without an icon use the default icon.
func (f *SkillFile) StatusEntries() []model.StatusEntry {
	entries := make([]model.StatusEntry, len(f.Statuses))
	for i, s := range f.Statuses {
		icon := s.Icon
		if icon == "" {
			icon = model.DefaultStatusIcon
		}
		entries[i] = model.StatusEntry{
			Keyword: s.Keyword,
			Profile: model.StatusProfile{Text: s.Text, Icon: icon},
		}
	}
	return entries
}

// LoadSkillFile loads the skill configuration from a TOML file
func LoadSkillFile(path string) (*SkillFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "skill config not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read skill config", goerr.V(ConfigPathKey, path))
	}

	var file SkillFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "skill config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &file, nil
}
