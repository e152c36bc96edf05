package markup

import "strings"

// Card thumbnails are served at 320x180 with reduced JPEG quality. The image
// CDN honours explicit size tokens, so substituting the known low-resolution
// tokens yields the full-resolution variant of the same asset. URLs without
// the expected tokens pass through untouched.
var thumbnailReplacer = strings.NewReplacer(
	"width=320", "width=1920",
	"height=180", "height=1080",
	"quality=60", "quality=100",
	"320x180", "1920x1080",
)

// UpgradeThumbnail rewrites a low-resolution thumbnail URL to its
// high-resolution variant. Best effort: unknown URLs are returned unchanged.
func UpgradeThumbnail(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	return thumbnailReplacer.Replace(url)
}
