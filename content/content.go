// Package content embeds the site's YAML catalogs and markdown articles.
package content

import "embed"

// FS holds catalog/*.yaml, blog/*.md and case-studies/*.md.
//
//go:embed catalog/*.yaml blog/*.md case-studies/*.md
var FS embed.FS
