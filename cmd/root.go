// Package cmd provides the command-line interface of the datsan client.
// Commands are the application's view layer: they read the session
// snapshot, ask the access gate whether the requested view may render,
// and call the session's mutation operations. The session itself is
// constructed once here and injected into every command.
package cmd

import (
	"fmt"
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/backend"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/config"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/keychain"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/notify"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/session"
)

var (
	cfg   config.Config
	sess  *session.Manager
	toast *notify.Toast
)

var rootCmd = &cobra.Command{
	Use:           "datsan",
	Short:         "Client for the đặt sân field booking platform",
	Long:          `datsan is the command-line client of the field booking platform. It manages your login session and opens the application's views, subject to your authentication state and role.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return bootstrap(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// bootstrap wires config, keychain, backend, and session together, then
// runs the one-time initialization. Nothing renders before Initialize
// returns; the spinner is the neutral loading state.
func bootstrap(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := keychain.NewManager()
	if err != nil {
		return fmt.Errorf("open keychain: %w", err)
	}
	toast = notify.New(cfg.Locale)
	api := backend.New(cfg.BaseURL, backend.DefaultEndpoints(), cfg.Timeout())
	sess = session.NewManager(api, store, toast)

	cursor.Hide()
	stop := startInlineSpinner(os.Stderr, "Đang khởi tạo phiên làm việc", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	sess.Initialize(cmd.Context())
	stop()
	cursor.Show()
	return nil
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
