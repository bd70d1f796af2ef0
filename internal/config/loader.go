package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// LoadFrom reads config with enhanced error handling
func LoadFrom(path string) (*Config, error) {
	// Check file existence first
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{
				Path:   path,
				Access: AccessRead,
				Reason: describeMode(path),
				Fix:    getReadPermissionFix(path),
			}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{
			Path: path,
			Err:  fmt.Errorf("JSON parse error: %w", err),
			Hint: fmt.Sprintf("Restore %s.bak if it exists, or recreate with 'toolbox-search config init --force'", path),
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, &InvalidConfigError{
			Path: path,
			Err:  err,
			Hint: "Remove the listed scoring/settings keys to fall back to their defaults",
		}
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// getReadPermissionFix returns platform-specific fix command
func getReadPermissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default: // unix-like
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}

// describeMode reports the current permission bits of path
func describeMode(path string) string {
	if runtime.GOOS == "windows" {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("Current permissions: %04o", info.Mode().Perm())
}
