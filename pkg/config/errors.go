package config

import "errors"

// ErrEmptyConfig is returned when a configuration payload has no content.
var ErrEmptyConfig = errors.New("config: configuration is empty")
