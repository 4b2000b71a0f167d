package config

import "errors"

var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
	ErrParseToml              = errors.New("failed to parse TOML")
	ErrNoSourceData           = errors.New("no source data provided")
	ErrInvalidValue           = errors.New("invalid value")
	ErrMissingRequiredField   = errors.New("missing required field")
)
