package config

import (
	"fmt"
	"os"
	"strings"

	"howett.net/plist"
)

// DefaultPlistPath is where the Jamf management agent stores its
// preferences, including the address of the server the device is
// enrolled with.
const DefaultPlistPath = "/Library/Preferences/com.jamfsoftware.jamf.plist"

const urlKey = "jss_url"

// Config holds everything the pipeline needs up front. It is resolved
// once at startup and passed in; nothing reads ambient state mid-run.
type Config struct {
	BaseURL     string
	Username    string
	Password    string
	Serial      string
	PlistPath   string
	LogLevel    string
	OnMissingID string
}

func DefaultConfig() Config {
	return Config{
		PlistPath:   DefaultPlistPath,
		LogLevel:    "info",
		OnMissingID: "fail",
	}
}

// ReadJSSURL returns the enrolled server URL from the management
// agent's preference plist, normalized for path joining.
func ReadJSSURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening jamf preferences: %w", err)
	}
	defer f.Close()

	var prefs map[string]any
	if err := plist.NewDecoder(f).Decode(&prefs); err != nil {
		return "", fmt.Errorf("decoding jamf preferences: %w", err)
	}

	raw, ok := prefs[urlKey]
	if !ok {
		return "", fmt.Errorf("%s: no %s key", path, urlKey)
	}

	url, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s is not a string, got %T", path, urlKey, raw)
	}

	return NormalizeURL(url), nil
}

// NormalizeURL strips the trailing slash the management agent writes
// into jss_url so endpoint paths don't end up with double slashes.
func NormalizeURL(url string) string {
	return strings.TrimSuffix(url, "/")
}
