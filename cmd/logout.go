package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd terminates the session. The server is notified best-effort;
// local credentials are cleared no matter what, so this command never
// fails.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Đăng xuất và xoá thông tin đăng nhập đã lưu",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess.Logout(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
