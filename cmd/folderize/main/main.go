package main

import (
	"os"

	"github.com/arthur-debert/folderize/cmd/folderize"
)

func main() {
	rootCmd := folderize.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(folderize.Report(err))
	}
}
