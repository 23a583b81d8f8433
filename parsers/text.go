package parsers

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aqua777/go-textblocks/textblocks"
)

var (
	ErrEmptyLine  = errors.New("empty line")
	ErrEmptyBlock = errors.New("empty block")
)

// Identity returns each line unchanged.
func Identity() textblocks.LineFunc[string] {
	return func(line string) (string, error) {
		return line, nil
	}
}

// Fields splits each line around runs of white space.
func Fields() textblocks.LineFunc[[]string] {
	return func(line string) ([]string, error) {
		return strings.Fields(line), nil
	}
}

// Runes returns the runes of each line.
func Runes() textblocks.LineFunc[[]rune] {
	return func(line string) ([]rune, error) {
		return []rune(line), nil
	}
}

// FirstRune returns the first rune of each line. It fails on an empty line.
func FirstRune() textblocks.LineFunc[rune] {
	return func(line string) (rune, error) {
		if line == "" {
			return 0, ErrEmptyLine
		}
		r, _ := utf8.DecodeRuneInString(line)
		return r, nil
	}
}

// Collect returns the transformed lines of a block unchanged.
func Collect[T any]() textblocks.BlockFunc[T, []T] {
	return func(values []T) ([]T, error) {
		return values, nil
	}
}

// Reverse returns the transformed lines of a block in reverse order. The
// input slice is not modified.
func Reverse[T any]() textblocks.BlockFunc[T, []T] {
	return func(values []T) ([]T, error) {
		out := slices.Clone(values)
		slices.Reverse(out)
		return out, nil
	}
}

// Concat builds a string from the runes of a block.
func Concat() textblocks.BlockFunc[rune, string] {
	return func(runes []rune) (string, error) {
		return string(runes), nil
	}
}

// JoinLines joins the lines of a block with sep.
func JoinLines(sep string) textblocks.BlockFunc[string, string] {
	return func(lines []string) (string, error) {
		return strings.Join(lines, sep), nil
	}
}
