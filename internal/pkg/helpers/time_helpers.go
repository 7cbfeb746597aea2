package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string such as "24h", falling back to the
// given default when the string does not parse. Logs through the zerolog
// global since it can run before the application logger is configured.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Dur("fallback", fallback).
			Msg("Unparseable duration, using fallback")
		return fallback
	}
	return d
}
