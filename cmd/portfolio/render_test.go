package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/portfolio-site/pkg/db"
	"github.com/portfolio-site/pkg/format"
	"github.com/portfolio-site/pkg/tokens"
	"github.com/portfolio-site/pkg/view"
)

func TestRenderTokenTable(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	proj := view.Projector{Links: format.DefaultLinks(), Location: time.UTC}

	var buf bytes.Buffer
	renderTokenTable(&buf, proj, []tokens.Record{
		{Token: "0x1234567890abcdef1234", Timestamp: "2024-05-01T11:00:00Z", Name: "Alpha", Symbol: "ALP", LiquidityETH: 1.5, Failures: []string{"a", "b"}},
	}, now)
	out := buf.String()
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "$ALP")
	assert.Contains(t, out, "0x1234...1234")
	assert.Contains(t, out, "1.50 ETH")
	assert.Contains(t, out, "1h ago")

	buf.Reset()
	renderTokenTable(&buf, proj, nil, now)
	assert.Contains(t, buf.String(), view.EmptyMessage)
}

func TestRenderMessageTable(t *testing.T) {
	var buf bytes.Buffer
	renderMessageTable(&buf, nil)
	assert.Contains(t, buf.String(), "No messages yet")

	buf.Reset()
	renderMessageTable(&buf, []db.ContactMessage{{Name: "Ada", Email: "ada@example.com", Message: "hi", CreatedAt: time.Now()}})
	assert.Contains(t, buf.String(), "ada@example.com")
}
