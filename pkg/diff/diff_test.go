package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	doc := []byte("controllers:\n  speed: 1\n")
	assert.Empty(t, GenerateUnifiedDiff(doc, doc, "a", "b"))
}

func TestGenerateUnifiedDiff_ChangedValue(t *testing.T) {
	t.Parallel()

	before := []byte("controllers:\n  speed: 1\n  tint: '#ff00ff'\n")
	after := []byte("controllers:\n  speed: 2\n  tint: '#ff00ff'\n")

	result := GenerateUnifiedDiff(before, after, "before.yaml", "after.yaml")

	require.NotEmpty(t, result)
	assert.True(t, strings.HasPrefix(result, "--- before.yaml\n+++ after.yaml\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, result, "\n controllers:\n")
	assert.Contains(t, result, "\n-  speed: 1\n")
	assert.Contains(t, result, "\n+  speed: 2\n")
	assert.Contains(t, result, "\n   tint: '#ff00ff'\n")
}

func TestGenerateUnifiedDiff_AddedLines(t *testing.T) {
	t.Parallel()

	before := []byte("a\nb\n")
	after := []byte("a\nb\nc\n")

	result := GenerateUnifiedDiff(before, after, "x", "y")
	assert.Contains(t, result, "@@ -1,2 +1,3 @@")
	assert.Contains(t, result, "\n+c\n")
	assert.NotContains(t, result, "\n-")
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 0; i < 11000; i++ {
		before = append(before, "left")
		after = append(after, "right")
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(before, "\n")), []byte(strings.Join(after, "\n")), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
