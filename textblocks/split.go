package textblocks

import "strings"

// Block is the lines of one block, in source order. Lines are substrings of
// the input and carry no line terminator.
type Block []string

// AsBlocks splits text into blocks separated by d.
//
// Every segment between delimiters becomes a block, including empty ones, so
// "" yields [[""]] and a trailing delimiter yields a final [""] block.
func AsBlocks(text string, d Delimiter) []Block {
	return splitBlocks(text, d.Resolve(text))
}

func splitBlocks(text, delimiter string) []Block {
	segments := splitSegments(text, delimiter)
	blocks := make([]Block, len(segments))
	for i, segment := range segments {
		blocks[i] = splitLines(segment)
	}
	return blocks
}

// splitSegments cuts text at each non-overlapping occurrence of delimiter.
// An empty delimiter never occurs.
func splitSegments(text, delimiter string) []string {
	if delimiter == "" {
		return []string{text}
	}
	return strings.Split(text, delimiter)
}

// splitLines splits a segment on LF and drops one trailing CR per line.
func splitLines(segment string) Block {
	lines := strings.Split(segment, LF)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Join is the inverse of AsBlocks for text without CR line endings: lines are
// joined with LF and blocks with delimiter.
func Join(blocks []Block, delimiter string) string {
	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(strings.Join(block, LF))
	}
	return sb.String()
}
