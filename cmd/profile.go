package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/notify"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Xem và cập nhật thông tin cá nhân",
	RunE: func(cmd *cobra.Command, args []string) error {
		if redirected(gate.DestProfile) {
			return nil
		}
		user := sess.Snapshot().User
		rows := pterm.TableData{
			{"Tên đăng nhập", user.Username},
			{"Họ và tên", user.FullName},
			{"Email", user.Email},
			{"Số điện thoại", user.Phone},
			{"Vai trò", gate.ParseRole(user.Role).String()},
		}
		return pterm.DefaultTable.WithData(rows).Render()
	},
}

var updateFlags struct {
	fullName string
	email    string
	phone    string
}

// profileUpdateCmd sends a partial update; the server's returned record
// replaces the local user wholesale.
var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Cập nhật thông tin cá nhân",
	RunE: func(cmd *cobra.Command, args []string) error {
		if redirected(gate.DestProfile) {
			return nil
		}
		fields := map[string]string{}
		if cmd.Flags().Changed("full-name") {
			fields["full_name"] = updateFlags.fullName
		}
		if cmd.Flags().Changed("email") {
			fields["email"] = updateFlags.email
		}
		if cmd.Flags().Changed("phone") {
			fields["phone"] = updateFlags.phone
		}
		if len(fields) == 0 {
			pterm.Info.Println("Không có thay đổi nào; dùng --full-name, --email hoặc --phone")
			return nil
		}
		if err := sess.UpdateProfile(cmd.Context(), fields); err != nil {
			return presentFailure(err, notify.KeyUpdateFailed, "cập nhật thông tin")
		}
		return nil
	},
}

// redirected applies the gate's verdict for a destination and reports
// whether the command should stop instead of rendering.
func redirected(dest string) bool {
	d := gate.Decide(sess.Snapshot(), dest)
	if d.Outcome != gate.OutcomeRedirect {
		return false
	}
	if d.Target == gate.DestLogin {
		pterm.Println("🔒 Bạn chưa đăng nhập. Chạy 'datsan login' để bắt đầu.")
	} else {
		pterm.Info.Println("Bạn không có quyền truy cập trang này")
	}
	return true
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringVar(&updateFlags.fullName, "full-name", "", "Họ và tên")
	profileUpdateCmd.Flags().StringVar(&updateFlags.email, "email", "", "Địa chỉ email")
	profileUpdateCmd.Flags().StringVar(&updateFlags.phone, "phone", "", "Số điện thoại")
}
