package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aqua777/go-textblocks/textblocks"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

const DefaultChunkingRegex = `[^,.;。？！]+[,.;。？！]?|[,.;。？！]`

// SentenceStrategy splits a paragraph into sentences.
type SentenceStrategy interface {
	Split(text string) []string
}

// RegexSentenceStrategy splits on punctuation using a regular expression.
type RegexSentenceStrategy struct {
	re *regexp.Regexp
}

// NewRegexSentenceStrategy compiles pattern, or DefaultChunkingRegex when
// pattern is empty.
func NewRegexSentenceStrategy(pattern string) (*RegexSentenceStrategy, error) {
	if pattern == "" {
		pattern = DefaultChunkingRegex
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid sentence pattern %q: %w", pattern, err)
	}
	return &RegexSentenceStrategy{re: re}, nil
}

func (s *RegexSentenceStrategy) Split(text string) []string {
	return compact(s.re.FindAllString(text, -1))
}

// NeurosnapSentenceStrategy uses neurosnap/sentences for sentence splitting.
type NeurosnapSentenceStrategy struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewNeurosnapSentenceStrategy creates a strategy backed by the English
// model bundled with neurosnap/sentences.
func NewNeurosnapSentenceStrategy() (*NeurosnapSentenceStrategy, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english sentence model: %w", err)
	}
	return &NeurosnapSentenceStrategy{tokenizer: tokenizer}, nil
}

func (s *NeurosnapSentenceStrategy) Split(text string) []string {
	found := s.tokenizer.Tokenize(text)
	result := make([]string, len(found))
	for i, sent := range found {
		result[i] = sent.Text
	}
	return compact(result)
}

// Sentences joins the lines of a block with a space and splits the result
// into sentences with strategy.
func Sentences(strategy SentenceStrategy) textblocks.BlockFunc[string, []string] {
	return func(lines []string) ([]string, error) {
		return strategy.Split(strings.Join(lines, " ")), nil
	}
}

// compact trims each part and drops the empty ones.
func compact(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
