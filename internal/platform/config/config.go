// Package config reads settings from environment variables
// source credentials, cache ttl and listen port all arrive this way
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"devfeed/internal/platform/logger"
)

// Conf reads env vars under a prefix, e.g. New().Prefix("GITHUB_")
type Conf struct{ prefix string }

// New returns an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// parsed returns parse(value) when the key is set and parses, def otherwise
// a set but unparseable value is logged so typos do not go unnoticed
func parsed[T any](c Conf, key, kind string, def T, parse func(string) (T, bool)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, ok := parse(s); ok {
		return v
	}
	logger.Get().Warn().
		Str("key", c.key(key)).
		Str("value", s).
		Interface("default", def).
		Msgf("invalid %s; using default", kind)
	return def
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// FirstString returns the first set value among keys, or def
// DEVTO_USERNAME falls back to MEDIUM_USERNAME this way
func (c Conf) FirstString(def string, keys ...string) string {
	for _, k := range keys {
		if v := c.lookup(k); v != "" {
			return v
		}
	}
	return def
}

func (c Conf) MayInt(key string, def int) int {
	return parsed(c, key, "int", def, func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	})
}

func (c Conf) MayBool(key string, def bool) bool {
	return parsed(c, key, "bool", def, func(s string) (bool, bool) {
		v, err := strconv.ParseBool(s)
		return v, err == nil
	})
}

func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, "duration", def, func(s string) (time.Duration, bool) {
		d, err := time.ParseDuration(s)
		return d, err == nil
	})
}

// MayTTL accepts a positive duration ("90s") or a bare integer of milliseconds ("3600000")
func (c Conf) MayTTL(key string, def time.Duration) time.Duration {
	return parsed(c, key, "ttl", def, func(s string) (time.Duration, bool) {
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, ms > 0
		}
		d, err := time.ParseDuration(s)
		return d, err == nil && d > 0
	})
}

// MayPort returns a listen address such as ":4000"; a leading colon in the value is allowed
func (c Conf) MayPort(key string, def int) string {
	p := parsed(c, key, "TCP port", def, func(s string) (int, bool) {
		p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
		return p, err == nil && p >= 1 && p <= 65535
	})
	return ":" + strconv.Itoa(p)
}

// MayCSV splits a comma separated value dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
