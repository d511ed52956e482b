package adapters

import (
	"net/url"
	"strings"
)

// ImageCategory selects which placeholder stands in for a missing image.
type ImageCategory string

const (
	ImagePatch     ImageCategory = "patch"
	ImageRocket    ImageCategory = "rocket"
	ImageLaunchpad ImageCategory = "launchpad"
	ImageMission   ImageCategory = "mission"
)

var placeholderImages = map[ImageCategory]string{
	ImagePatch:     "https://via.placeholder.com/300x300/1f2937/ffffff?text=SpaceX",
	ImageRocket:    "https://via.placeholder.com/400x600/1f2937/ffffff?text=Rocket",
	ImageLaunchpad: "https://via.placeholder.com/800x400/1f2937/ffffff?text=Launchpad",
	ImageMission:   "https://via.placeholder.com/600x400/1f2937/ffffff?text=Mission",
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// ResolveImage returns the given URL when it plausibly points at an image,
// otherwise the category placeholder. Deterministic: equal input, equal
// output.
func ResolveImage(imageURL *string, category ImageCategory) string {
	fallback, ok := placeholderImages[category]
	if !ok {
		fallback = placeholderImages[ImageMission]
	}

	if imageURL == nil || !IsImageURL(*imageURL) {
		return fallback
	}
	return *imageURL
}

// IsImageURL performs a basic shape check: the string parses as an absolute
// URL and carries a recognized image extension or a known hosting domain.
func IsImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	lower := strings.ToLower(raw)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(parsed.Path, ext) || strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.Contains(lower, "imgur") || strings.Contains(lower, "flickr")
}
