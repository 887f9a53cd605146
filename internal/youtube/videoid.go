package youtube

import "regexp"

// Matches the watch, embed, shorts and youtu.be URL forms; the capture group
// is the 11-character video id.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts)/|.*[?&]v=)|youtu\.be/)([A-Za-z0-9_-]{11})`)

var videoIDShape = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID pulls the video id out of a YouTube URL. The second return
// is false when the URL carries no 11-character id segment.
func ExtractVideoID(url string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ValidVideoID checks the shape of an id only; it says nothing about whether
// the video exists.
func ValidVideoID(id string) bool {
	return videoIDShape.MatchString(id)
}
