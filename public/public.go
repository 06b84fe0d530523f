// Package public embeds the static files served under /assets and /images.
package public

import "embed"

//go:generate npx tailwindcss -c tailwind.config.js -i assets/css/input.css -o assets/css/site.css --minify

// FS holds assets/, images/ and favicon.ico.
//
//go:embed assets images favicon.ico
var FS embed.FS
