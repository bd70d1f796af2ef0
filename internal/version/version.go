// Package version reports the build identity of toolbox-search.
//
// Release builds stamp the variables below with -ldflags, for example:
//
//	-X github.com/khanglvm/toolbox-search/internal/version.Version=v1.2.0
//	-X github.com/khanglvm/toolbox-search/internal/version.Commit=abc1234
//	-X github.com/khanglvm/toolbox-search/internal/version.Date=2026-10-01
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the stamped build variables.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build info.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// IsDev reports whether the binary was built without a version stamp.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// String is the one-line form shown by --version.
func (i Info) String() string {
	if i.IsDev() {
		return "dev (development build)"
	}
	return i.Version + " (commit: " + i.Commit + ", built: " + i.Date + ")"
}
