package render

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-pagebuilder/internal/blocks"
)

// EmbedURL rewrites known provider URLs into their embeddable form. URLs
// whose shape is not recognized pass through unchanged; rewriting degrades
// gracefully instead of failing.
func EmbedURL(provider blocks.EmbedProvider, raw string) string {
	switch provider {
	case blocks.EmbedYouTube:
		if id := youtubeID(raw); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case blocks.EmbedVimeo:
		if id := vimeoID(raw); id != "" {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return raw
}

// youtubeID extracts a video id from youtube.com/watch?v=<id> or
// youtu.be/<id> URL shapes.
func youtubeID(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(parsed.Path, "/watch") {
			return parsed.Query().Get("v")
		}
	case "youtu.be":
		return strings.Trim(parsed.Path, "/")
	}
	return ""
}

// vimeoID extracts the numeric id from vimeo.com/<id> URL shapes.
func vimeoID(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	if host != "vimeo.com" && host != "player.vimeo.com" {
		return ""
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for _, segment := range segments {
		if segment != "" && isNumeric(segment) {
			return segment
		}
	}
	return ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
