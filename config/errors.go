package config

import (
	"errors"
	"fmt"
)

// BaseSection names the top level options of config.toml in errors.
const BaseSection = "base"

var (
	ErrUnknownLogFormat = errors.New("unknown log_format (must be 'plain' or 'json')")

	// ErrNoHome is returned when files would be written relative to the
	// working directory because no home directory is set.
	ErrNoHome = errors.New("home directory is not set")
)

// ErrInSection is returned if validate basic does not pass for a section of
// the config file.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}
