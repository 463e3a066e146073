package version

import "fmt"

// Overridden at build time via -ldflags.
var (
	version = "v0.1.0"
	commit  = "unknown"
)

type Info struct {
	Version string
	Commit  string
}

func Get() Info {
	return Info{Version: version, Commit: commit}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
