package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/internal/config"
	"github.com/podratz/leonardo/internal/tui"
)

var (
	flagServeAddr        string
	flagServeHostKey     string
	flagServeIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the explorer over SSH",
	Long: `Start an SSH server that drops every connecting client into the
interactive spiral explorer. Sessions are recorded in the render
history.

Connect with:
  ssh -p 23235 localhost

Examples:
  leonardo serve
  leonardo serve --ssh :2222 --idle-timeout 10m`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Host key path (default: ~/.leonardo/host_key)")
	serveCmd.Flags().DurationVar(&flagServeIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) {
	render, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagServeAddr
	cfg.HostKeyPath = flagServeHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagServeIdleTimeout
	cfg.Render = render

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
