package main

import (
	"fmt"
	"log"

	"github.com/jonathan/career-recommender/internal/config"
	"github.com/jonathan/career-recommender/internal/history"
	"github.com/jonathan/career-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveFlags engineFlags
	servePort  int
	serveDSN   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes login, recommendation, export and history endpoints.

JWT_SECRET is required. APP_USERNAME / APP_PASSWORD set the login pair (default user / pass).
Set HISTORY_DSN (or --history-dsn) to a postgres:// URL or a SQLite file path to record queries.`,
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDSN, "history-dsn", "", "History store: postgres:// URL or SQLite file (defaults to HISTORY_DSN env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveFlags.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("history-dsn") {
		cfg.HistoryDSN = serveDSN
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	credentials, err := config.NewCredentialsConfig()
	if err != nil {
		return fmt.Errorf("failed to create credentials config: %w", err)
	}

	eng, err := loadEngine(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var store history.Store
	if cfg.HistoryDSN != "" {
		store, err = history.Open(commandContext(cmd), cfg.HistoryDSN)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		log.Printf("[history] recording queries")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		Corpus:      eng.corpus,
		Scorer:      eng.scorer,
		History:     store,
		Credentials: credentials,
		JWT:         jwtConfig,
	})
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
