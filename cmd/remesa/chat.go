package main

import (
	"fmt"
	"os"

	"github.com/avelarq/remesa"
	"github.com/avelarq/remesa/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive transfer conversation",
	Long:  `Starts the dialogue in the terminal. The assistant collects the transfer details turn by turn and asks for confirmation before executing.`,
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		sessionID, _ := cmd.Flags().GetString("session")

		svc, err := remesa.New()
		if err != nil {
			fmt.Printf("Error initializing remesa: %v\n", err)
			os.Exit(1)
		}

		runner := remesa.NewRunner()
		runner.Input = os.Stdin
		runner.Output = os.Stdout
		runner.Headless = headless
		runner.JSON = jsonMode
		if sessionID != "" {
			runner.SessionID = sessionID
		}
		if !headless && !jsonMode {
			tui.PrintBanner()
			runner.Renderer = tui.NewRenderer()
		}

		if err := runner.Run(cmd.Context(), svc); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().Bool("headless", false, "Run in headless mode (no banner or prompts, strict IO)")
	chatCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	chatCmd.Flags().String("session", "", "Resume an existing session ID instead of starting fresh")

	// Make 'chat' the default if no command is provided.
	rootCmd.Run = chatCmd.Run
}
