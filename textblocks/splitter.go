package textblocks

import (
	"log/slog"
	"strings"
)

// Splitter splits text into blank-line separated blocks.
// It satisfies TextSplitter, returning each block as one chunk.
type Splitter struct {
	// Delimiter separates blocks. Default: Auto().
	Delimiter Delimiter

	logger *slog.Logger
}

// NewSplitter creates a Splitter that detects the delimiter from its input
// and does not log.
func NewSplitter() *Splitter {
	return &Splitter{
		Delimiter: Auto(),
		logger:    discardLogger,
	}
}

// WithDelimiter sets the block delimiter.
func (s *Splitter) WithDelimiter(d Delimiter) *Splitter {
	s.Delimiter = d
	return s
}

// WithLogger sets the logger used for debug output. A nil logger disables
// logging.
func (s *Splitter) WithLogger(logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = discardLogger
	}
	s.logger = logger
	return s
}

// Resolve returns the delimiter the splitter uses for text.
func (s *Splitter) Resolve(text string) string {
	return s.Delimiter.Resolve(text)
}

func (s *Splitter) log() *slog.Logger {
	if s.logger == nil {
		return discardLogger
	}
	return s.logger
}

// Blocks splits text into blocks.
func (s *Splitter) Blocks(text string) []Block {
	delimiter := s.Resolve(text)
	blocks := splitBlocks(text, delimiter)
	s.log().Debug("split text into blocks",
		"mode", s.Delimiter.String(),
		"delimiter", delimiter,
		"text_len", len(text),
		"blocks", len(blocks),
	)
	return blocks
}

// SplitText splits text into blocks and returns each block with its lines
// joined by LF.
func (s *Splitter) SplitText(text string) []string {
	blocks := s.Blocks(text)
	chunks := make([]string, len(blocks))
	for i, block := range blocks {
		chunks[i] = strings.Join(block, LF)
	}
	return chunks
}
