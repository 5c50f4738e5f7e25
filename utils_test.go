package probe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	long := strings.Repeat("QUJD", 100)
	assert.Equal(t, long[:100]+"...", Preview(long, PreviewLength))

	exact := strings.Repeat("A", 100)
	assert.Equal(t, exact+"...", Preview(exact, PreviewLength))

	assert.Equal(t, "QUJD...", Preview("QUJD", PreviewLength))
}
