package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"communityforge/api"
	"communityforge/config"
	"communityforge/database"
	"communityforge/notify/discord"
)

var rootCmdPersistentFlags struct {
	LogFile    string
	ConfigFile string
	LogLevel   string
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogFile, "log-file", "", "File to write logs to")
	rootCmd.PersistentFlags().StringVarP(&rootCmdPersistentFlags.ConfigFile, "config", "c", "", "Path to config file (default: search for config.yml in current dir, ~/.communityforge, /etc/communityforge)")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")
}

var rootCmd = &cobra.Command{
	Use:   "communityforge",
	Short: "CommunityForge turns community rename submissions into formatted reports",
	Long: `CommunityForge is a small web form service: users submit a rename label, a
few metadata fields and a list of community names. The server validates the
submission, generates a numbered rename report, optionally forwards it to a
Discord webhook as a file attachment and stores the record.`,
	Example: `communityforge --config config.yml
  communityforge -c /path/to/config.yml --log-level debug`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logToFile()
	},
	Run: root,
}

func root(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level := cfg.LogLevel
	if rootCmdPersistentFlags.LogLevel != "" {
		level = rootCmdPersistentFlags.LogLevel
	}
	setLogLevel(level)

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	server, err := api.New(cfg, store, discord.NewClient(), log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("communityforge started successfully")
	<-c
	log.Info("shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down API server", "error", err)
	}
	if err := store.Close(); err != nil {
		log.Error("failed to close store", "error", err)
	}
}

func newStore(cfg *config.Config) (database.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store, submissions will not survive a restart")
		return database.NewMemory(), nil
	default:
		return database.New(cfg.Database.Path)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}

func logToFile() {
	if rootCmdPersistentFlags.LogFile == "" {
		return
	}
	file, err := os.OpenFile(rootCmdPersistentFlags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
}

func Execute() error {
	return rootCmd.Execute()
}
