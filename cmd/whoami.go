package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/token"
)

// whoamiCmd shows the current session: user identity, role, and the
// access token's expiry when the token is a decodable JWT.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Hiển thị phiên đăng nhập hiện tại",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := sess.Snapshot()
		if !snap.Authenticated() {
			pterm.Println("🔒 Bạn chưa đăng nhập. Chạy 'datsan login' để bắt đầu.")
			return nil
		}

		user := snap.User
		name := user.FullName
		if name == "" {
			name = user.Username
		}
		pterm.Printf("👤 %s (@%s)\n", name, user.Username)
		pterm.Printf("   Vai trò: %s\n", gate.ParseRole(user.Role))
		if user.Email != "" {
			pterm.Printf("   Email: %s\n", user.Email)
		}

		if exp, err := token.Expiry(sess.AccessToken()); err == nil {
			if time.Now().After(exp) {
				pterm.Warning.Printf("Access token đã hết hạn lúc %s — hãy đăng nhập lại\n", exp.Local().Format("15:04 02/01/2006"))
			} else {
				pterm.Printf("   Token hết hạn: %s\n", exp.Local().Format("15:04 02/01/2006"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
