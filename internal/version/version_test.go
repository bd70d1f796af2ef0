package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"dev build", Info{Version: "dev", Commit: "none", Date: "unknown"}, "dev (development build)"},
		{"unstamped", Info{}, "dev (development build)"},
		{"release", Info{Version: "v1.2.0", Commit: "abc1234", Date: "2026-10-01"}, "v1.2.0 (commit: abc1234, built: 2026-10-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Info{Version: Version, Commit: Commit, Date: Date}, info)
	assert.True(t, info.IsDev())
}
