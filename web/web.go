// Package web embeds the browser-side polling client so the service ships as
// a single binary.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
