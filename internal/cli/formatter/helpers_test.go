package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTierIndicator(t *testing.T) {
	tests := []struct {
		tier     domain.RiskTier
		contains string
	}{
		{domain.TierSafe, "SAFE"},
		{domain.TierCaution, "CAUTION"},
		{domain.TierDanger, "DANGER"},
		{domain.RiskTier("bogus"), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Contains(t, TierIndicator(tt.tier), tt.contains)
		})
	}
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("Next Steps"))
	assert.Equal(t, "NEXT STEPS\n──────────", got)
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	// Short IDs should be returned as-is (dimmed)
	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestWrap(t *testing.T) {
	text := "Learning happens in the struggle to write a thought."
	wrapped := stripANSI(Wrap(text, 20))
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(strings.TrimRight(line, " ")), 20)
	}
	assert.Equal(t, text, Wrap(text, 0))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("Declaration", "content here")
	assert.Contains(t, result, "DECLARATION")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
