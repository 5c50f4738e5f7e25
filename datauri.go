package probe

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultMediaType = "image/jpeg"
	// MediaTypeAuto asks for the media type to be sniffed from the image bytes.
	MediaTypeAuto = "auto"
)

// EncodeDataURI returns data:<mediaType>;base64,<payload> for data.
func EncodeDataURI(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mediaType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// SplitDataURI returns the media type and the still-encoded payload of a base64
// data URI.
func SplitDataURI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", "", fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	mediaType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", "", fmt.Errorf("%w: missing ;base64, marker", ErrInvalidDataURI)
	}
	if mediaType == "" || !strings.Contains(mediaType, "/") {
		return "", "", fmt.Errorf("%w: bad media type %q", ErrInvalidDataURI, mediaType)
	}
	if payload == "" {
		return "", "", fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}
	return mediaType, payload, nil
}

// ParseDataURI decodes a base64 data URI into its media type and bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	mediaType, payload, err := SplitDataURI(uri)
	if err != nil {
		return "", nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return mediaType, data, nil
}

// ResolveMediaType returns mediaType unchanged unless it is empty (the JPEG
// default) or MediaTypeAuto, in which case the bytes are sniffed.
func ResolveMediaType(mediaType string, data []byte) string {
	switch strings.TrimSpace(mediaType) {
	case "":
		return DefaultMediaType
	case MediaTypeAuto:
		return mimetype.Detect(data).String()
	}
	return mediaType
}

// encodeImage encodes data and checks the URI decodes back to the same bytes.
func encodeImage(mediaType string, data []byte) (string, string, error) {
	uri := EncodeDataURI(mediaType, data)
	_, decoded, err := ParseDataURI(uri)
	if err != nil {
		return "", "", err
	}
	if !bytes.Equal(decoded, data) {
		return "", "", fmt.Errorf("%w: payload does not round-trip", ErrInvalidDataURI)
	}
	payload := uri[strings.Index(uri, ",")+1:]
	return uri, payload, nil
}
