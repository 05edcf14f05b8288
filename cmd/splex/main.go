// Command splex tokenizes a SourcePawn-dialect source file and prints the
// resulting token stream, driving lexer.Lexer with the bundled minimal
// preprocessor.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
