// Package encoder turns image files into Base64 data URIs.
package encoder

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMIME is used when the extension is not recognized.
const DefaultMIME = "application/octet-stream"

var imageMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// GuessMIME returns the media type for path based on its extension.
func GuessMIME(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return DefaultMIME
	}
	// Image types are fixed so system mime.types tables cannot vary them.
	if t, ok := imageMIME[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
		return t
	}
	return DefaultMIME
}

// DataURI wraps data in a data:<mime>;base64,<payload> URI.
func DataURI(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// EncodeFile reads path and returns its contents as a data URI.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DataURI(GuessMIME(path), data), nil
}
