package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "remesa",
	Short: "Remesa is a slot-filling money transfer assistant",
	Long:  `Remesa runs a rule-based dialogue that collects the details of an international money transfer, confirms them with the sender, and executes the transfer.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
