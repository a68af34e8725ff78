package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/notify"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Đổi mật khẩu tài khoản",
	RunE: func(cmd *cobra.Command, args []string) error {
		if redirected(gate.DestProfile) {
			return nil
		}
		oldPassword, err := promptPassword("Mật khẩu hiện tại")
		if err != nil {
			return err
		}
		newPassword, err := promptPassword("Mật khẩu mới")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Nhập lại mật khẩu mới")
		if err != nil {
			return err
		}
		if newPassword != confirm {
			pterm.Error.Println("Mật khẩu mới không khớp")
			return nil
		}
		if err := sess.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
			return presentFailure(err, notify.KeyPasswordFailed, "đổi mật khẩu")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}
