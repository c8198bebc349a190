// Package web embeds the HTML templates and static assets for the chart
// pages, so the service ships as a single binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

func Templates() fs.FS {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		panic("web: failed to create templates sub filesystem: " + err.Error())
	}
	return sub
}

func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic("web: failed to create static sub filesystem: " + err.Error())
	}
	return sub
}
