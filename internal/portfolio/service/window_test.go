package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompact(t *testing.T) {
	assert.True(t, IsCompact(375))
	assert.True(t, IsCompact(767))
	assert.False(t, IsCompact(768))
	assert.False(t, IsCompact(1440))
	assert.False(t, IsCompact(0))
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 4, Threshold(true))
	assert.Equal(t, 6, Threshold(false))
}

func TestWindow_PrefixProperty(t *testing.T) {
	for _, compact := range []bool{true, false} {
		for length := 0; length <= 10; length++ {
			t.Run(fmt.Sprintf("compact=%v/len=%d", compact, length), func(t *testing.T) {
				items := make([]int, length)
				for i := range items {
					items[i] = i
				}

				collapsed := Window(items, compact, false)
				full := Window(items, compact, true)

				require.Len(t, full, length)
				require.Len(t, collapsed, min(length, Threshold(compact)))
				assert.Equal(t, full[:len(collapsed)], collapsed)
				assert.Equal(t, length > Threshold(compact), ShowToggle(length, compact))
			})
		}
	}
}

func TestWindow_DoesNotMutateSource(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	visible := Window(items, false, false)
	visible = append(visible, "appended")

	assert.Equal(t, "g", items[6])
	assert.Len(t, items, 7)
	assert.Equal(t, "appended", visible[6])
}
