package probe

const (
	PreviewLength = 100
	previewMarker = "..."
)

// Preview returns the first n characters of payload followed by an ellipsis
// marker. Shorter payloads are returned whole, still followed by the marker.
func Preview(payload string, n int) string {
	if n >= 0 && len(payload) > n {
		payload = payload[:n]
	}
	return payload + previewMarker
}
