package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/key"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// InvalidValueError is returned when a value is not acceptable for a key.
type InvalidValueError struct {
	Key    string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Key, e.Reason)
}

type check func(value any) string

var checks = map[string]check{
	key.DefaultSources:       nonEmpty,
	key.SiteListingURL:       absoluteURL,
	key.SiteEpisodesURL:      absoluteURL,
	key.CrawlMaxPages:        atLeast(0),
	key.NetworkTimeout:       atLeast(1),
	key.NetworkRetryCount:    atLeast(0),
	key.CacheListingPath:     listingPath,
	key.EpisodesPersistHours: atLeast(1),
	key.LogsLevel:            logLevel,
	key.IconsVariant:         oneOf(icon.AvailableVariants()...),
}

// Validate checks value against the rules of key. Keys without rules accept anything.
func Validate(k string, value any) error {
	c, ok := checks[k]
	if !ok {
		return nil
	}

	if reason := c(value); reason != "" {
		return &InvalidValueError{Key: k, Value: value, Reason: reason}
	}
	return nil
}

// Parse converts command-line arguments to the type of key's default value,
// normalizes paths and validates the result.
func Parse(k string, args []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", k)
	}

	if len(args) == 0 {
		return nil, &InvalidValueError{Key: k, Value: "", Reason: "no value given"}
	}

	var (
		value any
		err   error
	)

	switch field.Value.(type) {
	case string:
		value = strings.Join(args, " ")
	case int:
		value, err = cast.ToIntE(args[0])
	case bool:
		value, err = cast.ToBoolE(args[0])
	case []string:
		value = args
	default:
		err = fmt.Errorf("unsupported type %T", field.Value)
	}

	if err != nil {
		return nil, &InvalidValueError{Key: k, Value: args[0], Reason: fmt.Sprintf("expected %s", field.typeName())}
	}

	if k == key.CacheListingPath {
		if value, err = normalizePath(value.(string)); err != nil {
			return nil, err
		}
	}

	if err := Validate(k, value); err != nil {
		return nil, err
	}
	return value, nil
}

// normalizePath expands a leading ~ and makes path absolute. Empty stays empty.
func normalizePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}

func nonEmpty(value any) string {
	if cast.ToString(value) == "" {
		return "must not be empty"
	}
	return ""
}

func atLeast(min int) check {
	return func(value any) string {
		n, err := cast.ToIntE(value)
		if err != nil {
			return "not an integer"
		}
		if n < min {
			return fmt.Sprintf("must be at least %d", min)
		}
		return ""
	}
}

func absoluteURL(value any) string {
	u, err := url.Parse(cast.ToString(value))
	if err != nil {
		return err.Error()
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "must be an absolute http(s) URL"
	}
	return ""
}

func listingPath(value any) string {
	path := cast.ToString(value)
	if path == "" {
		return ""
	}

	if isDir, err := filesystem.API().IsDir(path); err == nil && isDir {
		return "is a directory, expected a file path"
	}
	return ""
}

func logLevel(value any) string {
	if _, err := logrus.ParseLevel(cast.ToString(value)); err != nil {
		return err.Error()
	}
	return ""
}

func oneOf(options ...string) check {
	return func(value any) string {
		if !lo.Contains(options, cast.ToString(value)) {
			return "expected one of " + strings.Join(options, ", ")
		}
		return ""
	}
}
