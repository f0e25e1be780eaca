package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"code.cloudfoundry.org/bytefmt"
)

// readInput loads the whole input into memory, refusing more than limit
// bytes when limit is not 0.
func readInput(path string, stdin io.Reader, limit uint64) ([]byte, error) {
	name := "standard input"
	r := stdin
	if path != DefaultInput {
		f, err := os.Open(path)
		if err != nil {
			return nil, ioError(err)
		}
		defer func() { _ = f.Close() }()
		name, r = path, f
	}

	if limit > 0 {
		// one byte over the limit is enough to know it was exceeded
		n := int64(math.MaxInt64)
		if limit < math.MaxInt64 {
			n = int64(limit) + 1
		}
		r = io.LimitReader(r, n)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(fmt.Errorf("failed to read %s: %w", name, err))
	}
	if limit > 0 && uint64(len(data)) > limit {
		return nil, noMemError(fmt.Errorf("%s is larger than %s: %w", name, bytefmt.ByteSize(limit), errInputLimit))
	}
	return data, nil
}
