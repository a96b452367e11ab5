package util

import (
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs the leading bytes of a file and checks the detected
// MIME type against a list of allowed prefixes or full types, e.g. "audio/",
// "image/png". Returns an UploadError when nothing matches.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, Uploadf("invalid file type: %s", mimeType)
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// IsAudio covers browser-produced audio MIME types. MP3 files without ID3
// headers sniff as application/octet-stream, so the extension check in the
// upload controller is the fallback for those.
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/") || mimeType == "application/ogg"
}

func HasAllowedExtension(filename string, allowed []string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
