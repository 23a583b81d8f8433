package textblocks

// TextSplitter is the interface for splitting text into chunks.
type TextSplitter interface {
	SplitText(text string) []string
}

// LineFunc transforms one line into a value.
type LineFunc[T any] func(line string) (T, error)

// BlockFunc transforms the transformed lines of one block into a value.
type BlockFunc[T, B any] func(lines []T) (B, error)
