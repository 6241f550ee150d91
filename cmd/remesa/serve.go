package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/avelarq/remesa"
	httpAdapter "github.com/avelarq/remesa/pkg/adapters/http"
	redisAdapter "github.com/avelarq/remesa/pkg/adapters/redis"
	"github.com/avelarq/remesa/internal/config"
	"github.com/avelarq/remesa/internal/logging"
	"github.com/avelarq/remesa/pkg/observability"
	"github.com/avelarq/remesa/pkg/persistence/middleware"
	"github.com/avelarq/remesa/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the transfer dialogue as an HTTP service, exposing sessions and turns as a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")

		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("port") {
			cfg.Addr = ":" + port
		}

		level, _ := cfg.Level()
		log := logging.NewJSON(level)

		opts := []remesa.Option{remesa.WithLogger(log)}

		if cfg.Redis != nil {
			client := goredis.NewClient(&goredis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})

			var store ports.StateStore = redisAdapter.NewFromClient(client,
				redisAdapter.WithTTL(time.Duration(cfg.Redis.SessionTTL)))
			if cfg.Encryption != nil {
				active, fallbacks, err := cfg.Encryption.Keys()
				if err != nil {
					fmt.Printf("Error loading encryption keys: %v\n", err)
					os.Exit(1)
				}
				store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
					ActiveKey:    active,
					FallbackKeys: fallbacks,
				})(store)
			}

			opts = append(opts,
				remesa.WithStore(store),
				remesa.WithLocker(redisAdapter.NewLocker(client, "remesa:lock:")),
			)
			log.Info("using redis session store", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		} else if cfg.Encryption != nil {
			log.Warn("encryption configured without redis; in-memory sessions stay unencrypted")
		}

		svc, err := remesa.New(opts...)
		if err != nil {
			fmt.Printf("Error initializing remesa: %v\n", err)
			os.Exit(1)
		}
		handler := httpAdapter.NewHandler(svc,
			httpAdapter.WithLogger(log),
			httpAdapter.WithMetrics(observability.NewMetrics()),
		)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Remesa Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Remesa Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringP("config", "c", "", "Path to YAML configuration file")
}
