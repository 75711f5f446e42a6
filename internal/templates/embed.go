// Package templates holds the server-rendered pages. Every page is parsed
// together with base.html and must define a "content" block.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
