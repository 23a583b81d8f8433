package parsers

import (
	"os"
	"testing"

	"github.com/aqua777/go-textblocks/textblocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTokenizer(t *testing.T) {
	tok := NewSimpleTokenizer()
	assert.Equal(t, []string{"one", "two", "three"}, tok.Encode(" one two\tthree "))
	assert.Empty(t, tok.Encode(""))
}

func TestTokenCount(t *testing.T) {
	text := "the quick brown\nfox\n\njumps over\n\n"
	counts, err := textblocks.ParseBlocks(text, textblocks.Auto(), Tokens(NewSimpleTokenizer()), TokenCount())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 0}, counts)
}

// The tiktoken encodings are downloaded on first use.
func TestTikTokenTokenizer(t *testing.T) {
	if os.Getenv("TEXTBLOCKS_TIKTOKEN_TESTS") == "" {
		t.Skip("set TEXTBLOCKS_TIKTOKEN_TESTS=1 to run tests that fetch tiktoken encodings")
	}

	tok, err := NewTikTokenTokenizer("")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Encode("hello world"))

	byEncoding, err := NewTikTokenTokenizerByEncoding(EncodingCL100kBase)
	require.NoError(t, err)
	assert.Equal(t, tok.Encode("hello world"), byEncoding.Encode("hello world"))

	counts, err := textblocks.ParseBlocks("hello\n\nworld", textblocks.Auto(), Tokens(tok), TokenCount())
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}

func TestTikTokenTokenizer_UnknownEncoding(t *testing.T) {
	_, err := NewTikTokenTokenizerByEncoding("no_such_encoding")
	assert.Error(t, err)
}
