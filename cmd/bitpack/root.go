package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bitpack",
		Short:         "Compress and decompress sparse or dense bitmaps",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newBatchCmd())

	return root
}
