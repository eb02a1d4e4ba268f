// Package web holds the monitoring dashboard.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
)

// AssetsDirEnv names the environment variable that makes the dashboard read
// its pages from a directory on disk instead of the binary.
const AssetsDirEnv = "VMSIM_MONITOR_ASSETS"

//go:embed dist
var dist embed.FS

// Assets returns the files of the dashboard.
func Assets() http.FileSystem {
	if dir := os.Getenv(AssetsDirEnv); dir != "" {
		return http.Dir(dir)
	}

	pages, err := fs.Sub(dist, "dist")
	if err != nil {
		panic(err)
	}

	return http.FS(pages)
}

// Handler serves the dashboard.
func Handler() http.Handler {
	return http.FileServer(Assets())
}
