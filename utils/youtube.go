package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractYouTubeID pulls the video id out of a watch, embed or youtu.be link.
// A bare 11 character id is returned as is. ok is false when nothing matches.
func ExtractYouTubeID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if youtubeIDPattern.MatchString(raw) {
		return raw, true
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch {
	case host == "youtu.be":
		candidate = firstSegment(u.Path)
	case host == "youtube.com" || host == "youtube-nocookie.com":
		switch {
		case strings.HasPrefix(u.Path, "/embed/"):
			candidate = firstSegment(strings.TrimPrefix(u.Path, "/embed/"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			candidate = firstSegment(strings.TrimPrefix(u.Path, "/shorts/"))
		default:
			candidate = u.Query().Get("v")
		}
	}

	if youtubeIDPattern.MatchString(candidate) {
		return candidate, true
	}
	return "", false
}

// YouTubeEmbedURL is the player URL stored for video lessons
func YouTubeEmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.Index(path, "/"); i >= 0 {
		path = path[:i]
	}
	return path
}
