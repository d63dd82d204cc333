// Package media handles browser-supplied data-URI payloads: MIME type
// detection, base64 body extraction, and size accounting. All functions are
// pure string operations so they can be tested without any I/O.
package media

import (
	"regexp"
	"strings"
)

// Kind identifies the media slot a payload was submitted under.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Fallback MIME types used when a payload carries no self-describing prefix.
const (
	fallbackVideoMIME = "video/mp4"
	fallbackAudioMIME = "audio/mp3"
	imageMIME         = "image/jpeg"
)

var (
	videoPrefixRE = regexp.MustCompile(`^data:(video/[a-zA-Z0-9]+);base64,`)
	audioPrefixRE = regexp.MustCompile(`^data:(audio/[a-zA-Z0-9]+);base64,`)
)

// DetectMIME resolves the MIME type to attach for a payload. Video and audio
// payloads are sniffed from their data-URI prefix and fall back to a fixed
// default. Images are always tagged image/jpeg to match the upstream prompt
// contract, whatever the uploaded format was.
func DetectMIME(kind Kind, raw string) string {
	switch kind {
	case KindVideo:
		if m := videoPrefixRE.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
		return fallbackVideoMIME
	case KindAudio:
		if m := audioPrefixRE.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
		return fallbackAudioMIME
	default:
		return imageMIME
	}
}

// Base64Body strips a data-URI prefix, returning the bare base64 content.
// Payloads without a prefix pass through unchanged.
func Base64Body(raw string) string {
	if idx := strings.Index(raw, ","); idx >= 0 && strings.HasPrefix(raw, "data:") {
		return raw[idx+1:]
	}
	return raw
}

// DecodedSize returns the byte size the base64 body decodes to, without
// decoding it. Used to enforce upload ceilings before a request is built.
func DecodedSize(raw string) int64 {
	body := Base64Body(raw)
	n := int64(len(body))
	if n == 0 {
		return 0
	}
	size := n / 4 * 3
	if strings.HasSuffix(body, "==") {
		size -= 2
	} else if strings.HasSuffix(body, "=") {
		size--
	}
	return size
}
