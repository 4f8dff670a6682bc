package mapper

import (
	"strings"
)

// isHex24 reports whether s is exactly 24 hex characters, the shape
// of a Mongo GridFS object id. Either letter case is accepted.
func isHex24(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// NormalizeImageRef converts one upstream image reference into a
// renderable source. References arrive in several shapes: gridfs
// pseudo-URLs, complete data URIs, bare base64 blobs, and raw object
// ids. The checks run in order and the first matching shape decides;
// anything unrecognized is dropped (ok=false) rather than passed
// through broken.
//
// retrievalBase is the URL prefix images are served from, e.g.
// "https://api.example.com/api/v1/images/gridfs".
func NormalizeImageRef(ref any, retrievalBase string) (string, bool) {
	s, isString := ref.(string)
	if !isString {
		return "", false
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// The prefix match is case-insensitive; the id keeps its case.
	if len(s) >= len("gridfs:") && strings.EqualFold(s[:len("gridfs:")], "gridfs:") {
		id := s[len("gridfs:"):]
		if id == "" {
			return "", false
		}
		return retrievalBase + "/" + id, true
	}

	if strings.HasPrefix(s, "data:image") {
		return s, true
	}

	// A long token with no path separator is a bare base64 payload.
	if len(s) > 50 && !strings.Contains(s, "/") {
		return "data:image/jpeg;base64," + s, true
	}

	if isHex24(s) {
		return retrievalBase + "/" + s, true
	}

	return "", false
}

// SanitizeImages normalizes a raw image list, dropping every
// reference that cannot be resolved to a renderable source. The
// result is never nil.
func SanitizeImages(v any, retrievalBase string) []string {
	out := []string{}
	for _, ref := range anySlice(v) {
		if src, ok := NormalizeImageRef(ref, retrievalBase); ok {
			out = append(out, src)
		}
	}
	return out
}
