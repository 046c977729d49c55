// Package web embeds the HTML templates rendered by the server.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
