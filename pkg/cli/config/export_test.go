package config

import "time"

// NewSkillForTest creates a Skill config for testing purposes
func NewSkillForTest(appID string, utcOffset int, configPath string, tolerance time.Duration) *Skill {
	return &Skill{
		appID:      appID,
		utcOffset:  utcOffset,
		configPath: configPath,
		tolerance:  tolerance,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(apiURL string, timeout time.Duration) *Slack {
	return &Slack{
		apiURL:  apiURL,
		timeout: timeout,
	}
}

// NewLocationForTest creates a Location config for testing purposes
func NewLocationForTest(apiKey, baseURL string, timeout time.Duration) *Location {
	return &Location{
		apiKey:  apiKey,
		baseURL: baseURL,
		timeout: timeout,
	}
}
