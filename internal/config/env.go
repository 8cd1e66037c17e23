package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrConversionFailed = errors.New("failed to convert environment variable")

func errConversionFailed(key, typeName string, err error) error {
	return fmt.Errorf("key: %s type: %s: %w: %v", key, typeName, ErrConversionFailed, err)
}

// LoadDotEnv loads variables from the given files. Missing files are skipped
// and variables already present in the environment win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func GetString(key, fallback string) string {
	if val, found := os.LookupEnv(key); found && val != "" {
		return val
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	val, found := os.LookupEnv(key)
	if !found || val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errConversionFailed(key, "int", err)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	val, found := os.LookupEnv(key)
	if !found || val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, errConversionFailed(key, "duration", err)
	}
	return d, nil
}

// GetStrings splits a comma separated value, dropping empty entries.
func GetStrings(key string, fallback []string) []string {
	val, found := os.LookupEnv(key)
	if !found || strings.TrimSpace(val) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetUint64s(key string) ([]uint64, error) {
	var out []uint64
	for _, part := range GetStrings(key, nil) {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errConversionFailed(key, "uint64", err)
		}
		out = append(out, n)
	}
	return out, nil
}
