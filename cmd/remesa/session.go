package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	redisAdapter "github.com/avelarq/remesa/pkg/adapters/redis"
	"github.com/avelarq/remesa/internal/config"
	"github.com/avelarq/remesa/pkg/ports"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persistent sessions",
	Long:  `List, inspect, and remove transfer sessions stored in Redis. Requires a config file with a redis section.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all active sessions",
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		sessions, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sessions: %v\n", err)
			os.Exit(1)
		}

		if len(sessions) == 0 {
			fmt.Println("No active sessions found.")
			return
		}

		fmt.Println("Active Sessions:")
		for _, s := range sessions {
			fmt.Println("- " + s)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect the state of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>",
	Short: "Remove a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		if err := store.Delete(cmd.Context(), sessionID); err != nil {
			fmt.Printf("Error removing session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}
		fmt.Printf("Session '%s' removed.\n", sessionID)
	},
}

// getStore opens the Redis store named by the --config file. The raw store
// is used on purpose: inspect shows exactly what is persisted, sealed
// envelope included.
func getStore(cmd *cobra.Command) ports.StateStore {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		fmt.Println("Error: session commands require --config with a redis section")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Redis == nil {
		fmt.Println("Error: config has no redis section; in-memory sessions are not inspectable")
		os.Exit(1)
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return redisAdapter.NewFromClient(client,
		redisAdapter.WithTTL(time.Duration(cfg.Redis.SessionTTL)))
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)

	sessionCmd.PersistentFlags().StringP("config", "c", "", "Path to YAML configuration file")
}
