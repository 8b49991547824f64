// Package web embeds the chat page served at the server root.
package web

import "embed"

//go:embed static
var Static embed.FS
