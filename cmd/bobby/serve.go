package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bobby-glide/internal/platform/tui"
	"github.com/vovakirdan/bobby-glide/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bobby Glide SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent run. Runs are recorded under
the SSH user name, and all users share the same history.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.bobby/host_key

Examples:
  bobby serve                           # Listen on :23235 with auto-generated key
  bobby serve --ssh :2222               # Listen on port 2222
  bobby serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 30m)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sshCfg := cfg.SSH
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	// The server has no TUI of its own, so logs go to stderr unless a file was asked for
	lc := cfg.Log
	if !cmd.Flags().Changed("log-file") {
		lc.File = ""
	}
	logger, closeLog, err := newLogger(lc, "bobby-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var runs tui.RunStore
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		// Continue without storage
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		runs = store
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     sshCfg.Address,
		HostKeyPath: sshCfg.HostKeyPath,
		IdleTimeout: sshCfg.IdleTimeout,
		TickRate:    cfg.Game.TickRate,
		Keys:        tui.NewKeyMap(cfg.Keys),
	}, runs, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Bobby Glide SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
