package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/notify"
)

var registerFlags struct {
	username string
	email    string
	fullName string
	phone    string
}

// registerCmd opens the registration view. A successful registration
// authenticates the session immediately, exactly like login.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Tạo tài khoản mới",
	RunE: func(cmd *cobra.Command, args []string) error {
		if d := gate.Decide(sess.Snapshot(), gate.DestRegister); d.Outcome == gate.OutcomeRedirect {
			pterm.Info.Println("Bạn đã đăng nhập; hãy đăng xuất trước khi tạo tài khoản mới")
			return nil
		}

		fields := map[string]string{}
		var err error
		if registerFlags.username == "" {
			if registerFlags.username, err = promptLine("Tên đăng nhập"); err != nil {
				return err
			}
		}
		fields["username"] = registerFlags.username
		if registerFlags.email == "" {
			if registerFlags.email, err = promptLine("Email"); err != nil {
				return err
			}
		}
		fields["email"] = registerFlags.email
		if registerFlags.fullName != "" {
			fields["full_name"] = registerFlags.fullName
		}
		if registerFlags.phone != "" {
			fields["phone"] = registerFlags.phone
		}

		password, err := promptPassword("Mật khẩu")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Nhập lại mật khẩu")
		if err != nil {
			return err
		}
		fields["password"] = password
		fields["password_confirm"] = confirm

		if err := sess.Register(cmd.Context(), fields); err != nil {
			return presentFailure(err, notify.KeyRegisterFailed, "đăng ký")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerFlags.username, "username", "u", "", "Tên đăng nhập")
	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "Địa chỉ email")
	registerCmd.Flags().StringVar(&registerFlags.fullName, "full-name", "", "Họ và tên")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "Số điện thoại")
}
