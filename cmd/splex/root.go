package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	traceComments   bool
	requireNewdecls bool
	outputFormat    string
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "splex [file]",
		Short:         "splex tokenizes a SourcePawn-dialect source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&traceComments, "trace-comments", false, "attribute front/tail comment blocks instead of discarding them")
	rootCmd.Flags().BoolVar(&requireNewdecls, "require-newdecls", false, "set the initial newdecls requirement (toggled at runtime by #pragma newdecls)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text or yaml")

	return rootCmd
}

func runTokenize(path string, out, errOut io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tokenizeFile(path, f, out, errOut)
}
