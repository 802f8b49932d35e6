package config

import "errors"

// ErrMissingMapFile indicates the positional map file argument was omitted.
var ErrMissingMapFile = errors.New("config: a map file argument is required")
