package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrMissingKeyword    = goerr.New("status keyword is required")
	ErrMissingText       = goerr.New("status text is required")
	ErrInvalidIcon       = goerr.New("status icon must be an emoji code like :taco:")
	ErrDuplicateKeyword  = goerr.New("duplicate status keyword")
	ErrInvalidUTCOffset  = goerr.New("UTC offset out of range")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrInvalidTimeout    = goerr.New("timeout must be positive")
	ErrInvalidTolerance  = goerr.New("request tolerance must be positive")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	KeywordKey     = "keyword"
	StatusIndexKey = "status_index"
)
