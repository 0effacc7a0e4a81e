package media

import "regexp"

// Known provider URL shapes. A URL matching none of them yields no ID and
// the entry is dropped from both embedding and thumbnail download.
var (
	vimeoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`player\.vimeo\.com/video/(\d+)`),
		regexp.MustCompile(`vimeo\.com/(\d+)`),
	}
	youtubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`),
	}
)

// ExtractVimeoID extracts the numeric video ID from a Vimeo URL.
func ExtractVimeoID(url string) (string, bool) {
	return firstMatch(vimeoPatterns, url)
}

// ExtractYouTubeID extracts the video ID from a YouTube URL.
func ExtractYouTubeID(url string) (string, bool) {
	return firstMatch(youtubePatterns, url)
}

func firstMatch(patterns []*regexp.Regexp, url string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
