// Package version carries build version information for dframe.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/dframe/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns version information, filling the commit from the module
// build info when it was not injected at link time.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			}
		}
	}
	return info
}

// Short returns a compact version string such as "dev-3fa9c21".
func Short() string {
	info := Get()
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}

// IsRelease reports whether the linked version looks like a tagged build.
func IsRelease() bool {
	return Version != "dev" && !strings.Contains(Version, "dirty")
}
