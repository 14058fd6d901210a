package version

import (
	"runtime"
	"time"
)

// Set at build time with -ldflags "-X github.com/Setharkk/Skyent-dev/pkg/version.Version=...".
var (
	Version   = "0.1.0"
	AppName   = "Skyent API"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var startedAt = time.Now()

type Info struct {
	AppName       string `json:"app_name"`
	Version       string `json:"version"`
	BuildDate     string `json:"build_date"`
	GitCommit     string `json:"git_commit"`
	GoVersion     string `json:"go_version"`
	Platform      string `json:"platform"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func GetInfo() Info {
	return Info{
		AppName:       AppName,
		Version:       Version,
		BuildDate:     BuildDate,
		GitCommit:     GitCommit,
		GoVersion:     runtime.Version(),
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
	}
}

// UserAgent identifies outbound calls to providers and search APIs.
func UserAgent() string {
	return "skyent-api/" + Version
}
