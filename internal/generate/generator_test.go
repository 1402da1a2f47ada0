package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestGenerate_Success(t *testing.T) {
	llm := &stubLLM{reply: `{"name":"Asha Rao","title":"Backend Engineer"}`}
	gen := New(llm)

	doc, err := gen.Generate(context.Background(), "resume", "backend engineer, 5 years")
	require.NoError(t, err)
	assert.JSONEq(t, llm.reply, string(doc))
	assert.Contains(t, llm.lastPrompt, "backend engineer, 5 years")
}

func TestGenerate_EmptyHintUsesDefault(t *testing.T) {
	llm := &stubLLM{reply: `{"body":"Dear hiring manager"}`}
	gen := New(llm)

	_, err := gen.Generate(context.Background(), "cover_letter", "")
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "a generic job application")
}

func TestGenerate_UnsupportedDocType(t *testing.T) {
	gen := New(&stubLLM{})

	_, err := gen.Generate(context.Background(), "memo", "quarterly update")
	var unsupported *ErrUnsupportedDocType
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "memo", unsupported.DocType)
}

func TestGenerate_NonJSONReply(t *testing.T) {
	llm := &stubLLM{reply: `Sure, here's your resume: {"name":"Bob"}`}
	gen := New(llm)

	_, err := gen.Generate(context.Background(), "resume", "anything")
	var invalid *ErrInvalidCompletion
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, llm.reply, invalid.Raw)
}

func TestGenerate_SchemaViolation(t *testing.T) {
	llm := &stubLLM{reply: `{"sub_total":"lots"}`}
	gen := New(llm)

	_, err := gen.Generate(context.Background(), "invoice", "consulting invoice")
	var invalid *ErrInvalidCompletion
	require.True(t, errors.As(err, &invalid))
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("quota exceeded")}
	gen := New(llm)

	_, err := gen.Generate(context.Background(), "resume", "anything")
	require.Error(t, err)
	var invalid *ErrInvalidCompletion
	assert.False(t, errors.As(err, &invalid))
}
