package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessFileUnreadableDocument(t *testing.T) {
	p := NewProcessor(nil, nil, nil)

	result := p.ProcessFile(context.Background(), "/nonexistent/doc.pdf")

	// An unreadable document degrades to an empty draft, never an error.
	assert.True(t, result.Draft.IsEmpty())
	assert.Empty(t, result.Previews)
}
