package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImageURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"png", "https://images2.imgix.net/patch.png", true},
		{"jpg uppercase", "https://example.com/PHOTO.JPG", true},
		{"imgur without extension", "https://imgur.com/gallery/abc", true},
		{"flickr without extension", "https://live.staticflickr.com/abc", true},
		{"no scheme", "images2.imgix.net/patch.png", false},
		{"not an image", "https://en.wikipedia.org/wiki/Demo-2", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImageURL(tt.url))
		})
	}
}

func TestResolveImage(t *testing.T) {
	url := "https://images2.imgix.net/patch.png"
	assert.Equal(t, url, ResolveImage(&url, ImagePatch))

	// nil and implausible URLs fall back to the category placeholder
	fallback := ResolveImage(nil, ImagePatch)
	assert.Contains(t, fallback, "placeholder")
	assert.Contains(t, fallback, "SpaceX")

	bogus := "not a url"
	assert.Equal(t, fallback, ResolveImage(&bogus, ImagePatch))
}

func TestResolveImageUnknownCategory(t *testing.T) {
	got := ResolveImage(nil, ImageCategory("banner"))
	assert.Equal(t, ResolveImage(nil, ImageMission), got)
}

func TestResolveImageDeterministic(t *testing.T) {
	url := "https://live.staticflickr.com/photo.jpg"
	first := ResolveImage(&url, ImageMission)
	second := ResolveImage(&url, ImageMission)
	assert.Equal(t, first, second)
}
