package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobuild",
	Short: "gobuild compiles Go code into linkable libraries",
	Long: `gobuild compiles a Go source tree into a C archive or C shared library
and emits cargo-style linkage directives on stdout, so build scripts written
in any language can link Go code into their host build.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
