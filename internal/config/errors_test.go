package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("scoring.matchThreshold must be within [0, 1], got 2")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "not found",
			err:  &ConfigNotFoundError{Path: "/tmp/cfg.json"},
			want: []string{"config file not found: /tmp/cfg.json\n💡 ", "toolbox-search config init", "--config"},
		},
		{
			name: "permission with fix",
			err:  &PermissionError{Path: "/etc/cfg.json", Access: AccessWrite, Reason: "Config file is read-only", Fix: "Run: chmod u+w /etc/cfg.json"},
			want: []string{"cannot write /etc/cfg.json: permission denied\nConfig file is read-only\n💡 Fix: Run: chmod u+w /etc/cfg.json"},
		},
		{
			name: "invalid",
			err:  &InvalidConfigError{Path: "/tmp/cfg.json", Err: cause, Hint: "Remove the key"},
			want: []string{"invalid config: /tmp/cfg.json\nscoring.matchThreshold", "\n💡 Remove the key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				assert.Contains(t, tt.err.Error(), want)
			}
		})
	}
}

func TestErrorMessages_NoHint(t *testing.T) {
	err := &InvalidConfigError{Path: "/tmp/cfg.json"}
	assert.Equal(t, "invalid config: /tmp/cfg.json", err.Error())

	perm := &PermissionError{Path: "/tmp", Access: AccessRead}
	assert.NotContains(t, perm.Error(), "💡")
}

func TestInvalidConfigError_Unwrap(t *testing.T) {
	cause := errors.New("settings.maxResults must not be negative")
	err := error(&InvalidConfigError{Path: "cfg.json", Err: cause})
	assert.ErrorIs(t, err, cause)
}
