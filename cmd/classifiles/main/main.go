package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/classifiles/cmd/classifiles"
	"github.com/arthur-debert/classifiles/pkg/style"
)

func main() {
	rootCmd := classifiles.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.NewRenderer().RenderError(err))
		os.Exit(1)
	}
}
