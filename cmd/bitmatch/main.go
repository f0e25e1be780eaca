// bitmatch looks for a bit pattern in binary data read from standard input
// or a file. The pattern does not need to be byte aligned: it is found at
// whatever bit offset it first occurs.
//
// Usage
// =====
//
//	bitmatch [flags] <pattern> <bits>
//
// <pattern> is a sequence of hexadecimal digits and <bits> the number of
// significant bits to take from it. When <bits> is not a multiple of 4 the
// last digit needed gives its low-order bits:
//
//	printf '\x5a\x0f' | bitmatch -p A 4    # prints 4
//	printf '\x40' | bitmatch -p 1 1        # prints 1
//
// Flags can also be set from the environment (BITMATCH_MAX_INPUT=64M) or a
// configuration file passed with --config.
//
// Exit Codes
// ==========
//
// 0: The pattern was found (a zero bit pattern is always found).
// --help and --version also exit with 0.
// 1: The pattern was not found.
// 3: Usage error.
// 4: Invalid pattern or bit count.
// 5: The input is larger than --max-input.
// 6: The input could not be read, or is too large to be addressed by bit.
package main

import (
	"os"

	"github.com/mhr3/bitmatch/cmd/bitmatch/cmd"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit
	os.Exit(cmd.Execute())
}
