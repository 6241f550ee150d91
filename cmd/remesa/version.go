package main

import (
	"fmt"
	"strings"

	"github.com/avelarq/remesa"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of remesa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remesa version %s\n", strings.TrimSpace(remesa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
