package config

import "errors"

var (
	// ErrBadLocale reports an unparseable locale tag in the settings.
	ErrBadLocale = errors.New("config: invalid locale tag")

	// ErrBadBase reports an integer base outside 2-36.
	ErrBadBase = errors.New("config: integer base must be in 2..36")

	// ErrBadPrecision reports a negative float precision.
	ErrBadPrecision = errors.New("config: float precision must be >= 0")

	// ErrReloaderClosed reports use of a closed Reloader.
	ErrReloaderClosed = errors.New("config: reloader closed")
)
