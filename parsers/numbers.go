// Package parsers provides ready-made line and block transforms for use with
// textblocks.ParseLines and textblocks.ParseBlocks.
package parsers

import (
	"strconv"
	"strings"

	"github.com/aqua777/go-textblocks/textblocks"
)

// Number is the set of types the numeric block reducers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Uint parses each line as a base 10 unsigned integer that fits in bitSize
// bits. Surrounding whitespace is ignored.
func Uint(bitSize int) textblocks.LineFunc[uint64] {
	return func(line string) (uint64, error) {
		return strconv.ParseUint(strings.TrimSpace(line), 10, bitSize)
	}
}

// Int parses each line as a base 10 signed integer that fits in bitSize bits.
func Int(bitSize int) textblocks.LineFunc[int64] {
	return func(line string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(line), 10, bitSize)
	}
}

// Float parses each line as a floating point number.
func Float(bitSize int) textblocks.LineFunc[float64] {
	return func(line string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(line), bitSize)
	}
}

// Sum adds the values of a block. An empty block sums to zero.
func Sum[N Number]() textblocks.BlockFunc[N, N] {
	return func(values []N) (N, error) {
		var total N
		for _, v := range values {
			total += v
		}
		return total, nil
	}
}

// Product multiplies the values of a block. An empty block yields one.
func Product[N Number]() textblocks.BlockFunc[N, N] {
	return func(values []N) (N, error) {
		total := N(1)
		for _, v := range values {
			total *= v
		}
		return total, nil
	}
}

// Min returns the smallest value of a block.
func Min[N Number]() textblocks.BlockFunc[N, N] {
	return func(values []N) (N, error) {
		if len(values) == 0 {
			var zero N
			return zero, ErrEmptyBlock
		}
		lo := values[0]
		for _, v := range values[1:] {
			lo = min(lo, v)
		}
		return lo, nil
	}
}

// Max returns the largest value of a block.
func Max[N Number]() textblocks.BlockFunc[N, N] {
	return func(values []N) (N, error) {
		if len(values) == 0 {
			var zero N
			return zero, ErrEmptyBlock
		}
		hi := values[0]
		for _, v := range values[1:] {
			hi = max(hi, v)
		}
		return hi, nil
	}
}

// Spread returns the difference between the largest and smallest value of a
// block.
func Spread[N Number]() textblocks.BlockFunc[N, N] {
	lo, hi := Min[N](), Max[N]()
	return func(values []N) (N, error) {
		a, err := lo(values)
		if err != nil {
			return a, err
		}
		b, _ := hi(values)
		return b - a, nil
	}
}
