package plaintext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

func TestFallback(t *testing.T) {
	normaliser := New()
	assert.Nil(t, normaliser.SupportedExtensions())
	assert.Equal(t, 5, normaliser.Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawFile{Path: "notes/meeting_notes.txt", Content: []byte("  Agenda\n\n* item  ")}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "meeting notes", result.Title)
	assert.Equal(t, "  Agenda\n\n* item  ", result.Text)
}

func TestNormalise_NilFile(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestNormalise_UnicodeContent(t *testing.T) {
	content := "Héllo wörld 你好 🎉"
	raw := &domain.RawFile{Path: "unicode.txt", Content: []byte(content)}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, content, result.Text)
}

func TestNormalise_InvalidUTF8(t *testing.T) {
	raw := &domain.RawFile{Path: "binary.txt", Content: []byte{'o', 'k', 0xff, 0xfe, '!'}}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "ok�!", result.Text)
}

func TestNormalise_LargeContent(t *testing.T) {
	content := strings.Repeat("line of text\n", 10000)
	raw := &domain.RawFile{Path: "large.txt", Content: []byte(content)}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Len(t, result.Text, len(content))
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = New()
}
