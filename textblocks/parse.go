package textblocks

import "log/slog"

var discardLogger = slog.New(slog.DiscardHandler)

// ParseLines splits text into blocks and applies fn to every line.
//
// The first error returned by fn stops the parse and is returned as is,
// with a nil result. Panics in fn are not recovered.
func ParseLines[T any](text string, d Delimiter, fn LineFunc[T]) ([][]T, error) {
	return parseLines(AsBlocks(text, d), fn, discardLogger)
}

// ParseBlocks splits text into blocks, applies lineFn to every line and then
// blockFn to the transformed lines of each block, producing one value per
// block.
//
// Blocks are processed in order, each one fully before the next. The first
// error from either function stops the parse and is returned as is.
func ParseBlocks[T, B any](text string, d Delimiter, lineFn LineFunc[T], blockFn BlockFunc[T, B]) ([]B, error) {
	return parseBlocks(AsBlocks(text, d), lineFn, blockFn, discardLogger)
}

// MapLines is ParseLines for a transform that cannot fail.
func MapLines[T any](text string, d Delimiter, fn func(line string) T) [][]T {
	out, _ := ParseLines(text, d, infallibleLine(fn))
	return out
}

// MapBlocks is ParseBlocks for transforms that cannot fail.
func MapBlocks[T, B any](text string, d Delimiter, lineFn func(line string) T, blockFn func(lines []T) B) []B {
	out, _ := ParseBlocks(text, d, infallibleLine(lineFn), infallibleBlock(blockFn))
	return out
}

// ParseLinesWith is ParseLines using the delimiter and logger of s.
func ParseLinesWith[T any](s *Splitter, text string, fn LineFunc[T]) ([][]T, error) {
	return parseLines(s.Blocks(text), fn, s.log())
}

// ParseBlocksWith is ParseBlocks using the delimiter and logger of s.
func ParseBlocksWith[T, B any](s *Splitter, text string, lineFn LineFunc[T], blockFn BlockFunc[T, B]) ([]B, error) {
	return parseBlocks(s.Blocks(text), lineFn, blockFn, s.log())
}

func parseLines[T any](blocks []Block, fn LineFunc[T], logger *slog.Logger) ([][]T, error) {
	out := make([][]T, len(blocks))
	for i, block := range blocks {
		values, err := parseBlockLines(i, block, fn, logger)
		if err != nil {
			return nil, err
		}
		out[i] = values
	}
	return out, nil
}

func parseBlocks[T, B any](blocks []Block, lineFn LineFunc[T], blockFn BlockFunc[T, B], logger *slog.Logger) ([]B, error) {
	out := make([]B, len(blocks))
	for i, block := range blocks {
		values, err := parseBlockLines(i, block, lineFn, logger)
		if err != nil {
			return nil, err
		}
		v, err := blockFn(values)
		if err != nil {
			logger.Debug("block transform failed", "block", i, "error", err)
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseBlockLines[T any](index int, block Block, fn LineFunc[T], logger *slog.Logger) ([]T, error) {
	values := make([]T, len(block))
	for j, line := range block {
		v, err := fn(line)
		if err != nil {
			logger.Debug("line transform failed", "block", index, "line", j, "error", err)
			return nil, err
		}
		values[j] = v
	}
	return values, nil
}

func infallibleLine[T any](fn func(string) T) LineFunc[T] {
	return func(line string) (T, error) {
		return fn(line), nil
	}
}

func infallibleBlock[T, B any](fn func([]T) B) BlockFunc[T, B] {
	return func(lines []T) (B, error) {
		return fn(lines), nil
	}
}
