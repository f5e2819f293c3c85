package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliprect/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagDefaultClip string
	flagServeRepeat bool
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview SSH server",
	Long: `Start an SSH server that plays clip previews.

Each SSH connection gets its own preview. The clip is picked by the
session command; without one the default clip is shown.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cliprect/host_key

Examples:
  cliprect serve                           # Listen on :23235 with auto-generated key
  cliprect serve --ssh :2222               # Listen on port 2222
  cliprect serve --clip iris --repeat=false

Users can connect with:
  ssh localhost -p 23235          # default clip
  ssh -t localhost -p 23235 iris  # a named clip`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagDefaultClip, "clip", "reveal", "Clip shown when the session names none")
	serveCmd.Flags().BoolVar(&flagServeRepeat, "repeat", true, "Loop previews")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	if _, err := cat.lookup(flagDefaultClip); err != nil {
		return fmt.Errorf("--clip: %w", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DefaultClip: flagDefaultClip,
		TickRate:    flagFPS,
		Repeat:      flagServeRepeat,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	resolve := func(name string) (tui.Clip, error) {
		src, err := cat.lookup(name)
		if err != nil {
			return tui.Clip{}, err
		}
		return src.previewClip(), nil
	}

	server, err := tui.NewSSHServer(cfg, resolve, logger.WithPrefix("cliprect-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting cliprect SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
