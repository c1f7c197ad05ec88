// Package config reads application configuration from environment variables.
// Must* accessors panic through the logger on missing or malformed values; May* accessors
// fall back to a default and warn when a value is present but unusable
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"freightdesk/internal/platform/logger"
)

// lookup is the env source; tests swap it
var lookup = os.Getenv

// Conf is a namespaced view over environment variables (e.g. "CORE_API_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("INQUIRY_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully-qualified env var name
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) value(k string) string { return strings.TrimSpace(lookup(c.Key(k))) }

func (c Conf) panicMissing(k string) {
	logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
}

// MustString panics if the key is missing or blank
func (c Conf) MustString(key string) string {
	v := c.value(key)
	if v == "" {
		c.panicMissing(key)
	}
	return v
}

// MustInt panics if the key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	addr, ok := portAddr(s)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return addr
}

// MayPort is MustPort with a default address; invalid values warn and use def
func (c Conf) MayPort(key, def string) string {
	s := c.value(key)
	if s == "" {
		return def
	}
	if addr, ok := portAddr(s); ok {
		return addr
	}
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Str("default", def).Msg("invalid port; using default")
	return def
}

// portAddr accepts "4000" or ":4000"
func portAddr(s string) (string, bool) {
	p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
	if err != nil || p < 1 || p > 65535 {
		return "", false
	}
	return ":" + strconv.Itoa(p), true
}

// MayString returns the value or def if missing/blank
func (c Conf) MayString(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.value(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayIntRange is MayInt that also rejects values outside [lo, hi]
func (c Conf) MayIntRange(key string, def, lo, hi int) int {
	v := c.MayInt(key, def)
	if v < lo || v > hi {
		logger.Get().Warn().Str("key", c.Key(key)).Int("value", v).Int("min", lo).Int("max", hi).
			Int("default", def).Msg("int out of range; using default")
		return def
	}
	return v
}

// MayBool returns the value or def if missing; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.value(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.value(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma-separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.value(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value lower-cased if it is one of allowed (any case), def if unset.
// Panics on a value outside allowed
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
