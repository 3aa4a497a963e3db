// Package share formats outbound share payloads for third-party networks.
// Pure string/URL building, no network calls.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// Practical per-platform content limits, matching what each share intent
// displays without clipping.
const (
	TwitterContentLimit = 200
	LineContentLimit    = 300
)

type Formatter struct {
	baseURL  string
	hashtags []string
}

func New(baseURL string, hashtags []string) *Formatter {
	return &Formatter{baseURL: strings.TrimSuffix(baseURL, "/"), hashtags: hashtags}
}

// PostURL returns the canonical URL of a post's detail page.
func (f *Formatter) PostURL(postId int64) string {
	return fmt.Sprintf("%s/post/%d", f.baseURL, postId)
}

// TwitterURL builds a tweet intent URL with truncated content, the hashtag
// footer and the canonical post link.
func (f *Formatter) TwitterURL(postId int64, content string) string {
	text := Truncate(content, TwitterContentLimit)
	if footer := f.hashtagLine(); footer != "" {
		text += "\n\n" + footer
	}
	query := url.Values{}
	query.Set("text", text)
	query.Set("url", f.PostURL(postId))
	return "https://twitter.com/intent/tweet?" + query.Encode()
}

// LineURL builds a LINE share intent URL.
func (f *Formatter) LineURL(postId int64, content string) string {
	postURL := f.PostURL(postId)
	text := Truncate(content, LineContentLimit) + "\n\n" + postURL
	query := url.Values{}
	query.Set("url", postURL)
	query.Set("text", text)
	return "https://social-plugins.line.me/lineit/share?" + query.Encode()
}

// InstagramCopyText is the clipboard payload for networks without a share
// intent: full content, hashtag footer and the canonical link.
func (f *Formatter) InstagramCopyText(postId int64, content string) string {
	var b strings.Builder
	b.WriteString(content)
	if footer := f.hashtagLine(); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}
	b.WriteString("\n\n")
	b.WriteString(f.PostURL(postId))
	return b.String()
}

func (f *Formatter) hashtagLine() string {
	if len(f.hashtags) == 0 {
		return ""
	}
	tags := make([]string, len(f.hashtags))
	for i, tag := range f.hashtags {
		tags[i] = "#" + strings.TrimPrefix(tag, "#")
	}
	return strings.Join(tags, " ")
}

// Truncate shortens content to at most maxRunes runes, replacing the tail
// with a single ellipsis rune when it has to cut. Rune-based so multibyte
// text never gets split mid-character.
func Truncate(content string, maxRunes int) string {
	runes := []rune(content)
	if len(runes) <= maxRunes {
		return content
	}
	return string(runes[:maxRunes-1]) + "…"
}
