package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aqua777/go-textblocks/textblocks"
	"github.com/pkoukk/tiktoken-go"
)

// Common encoding names
const (
	EncodingCL100kBase = "cl100k_base" // GPT-4, GPT-3.5-turbo, text-embedding-ada-002
	EncodingO200kBase  = "o200k_base"  // GPT-4o models
)

// Tokenizer is the interface for tokenizing text.
// It encodes text into a list of string tokens.
type Tokenizer interface {
	Encode(text string) []string
}

// SimpleTokenizer tokenizes text by splitting on whitespace.
type SimpleTokenizer struct{}

func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

func (t *SimpleTokenizer) Encode(text string) []string {
	return strings.Fields(text)
}

// TikTokenTokenizer tokenizes text using OpenAI's tiktoken.
// Tokens are the decimal string form of the token IDs.
type TikTokenTokenizer struct {
	encoding *tiktoken.Tiktoken
}

// NewTikTokenTokenizer creates a tokenizer for the encoding used by model.
// An empty model defaults to gpt-3.5-turbo.
func NewTikTokenTokenizer(model string) (*TikTokenTokenizer, error) {
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding for model %s: %w", model, err)
	}
	return &TikTokenTokenizer{encoding: enc}, nil
}

// NewTikTokenTokenizerByEncoding creates a tokenizer for a named encoding.
// An empty name defaults to cl100k_base.
func NewTikTokenTokenizerByEncoding(encodingName string) (*TikTokenTokenizer, error) {
	if encodingName == "" {
		encodingName = EncodingCL100kBase
	}
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding %s: %w", encodingName, err)
	}
	return &TikTokenTokenizer{encoding: enc}, nil
}

func (t *TikTokenTokenizer) Encode(text string) []string {
	ids := t.encoding.Encode(text, nil, nil)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = strconv.Itoa(id)
	}
	return tokens
}

// Tokens encodes each line with tok.
func Tokens(tok Tokenizer) textblocks.LineFunc[[]string] {
	return func(line string) ([]string, error) {
		return tok.Encode(line), nil
	}
}

// TokenCount counts the tokens of a block whose lines were transformed with
// Tokens.
func TokenCount() textblocks.BlockFunc[[]string, int] {
	return func(lines [][]string) (int, error) {
		n := 0
		for _, tokens := range lines {
			n += len(tokens)
		}
		return n, nil
	}
}
