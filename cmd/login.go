package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/backend"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/httperrors"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/notify"
)

var loginUsername string

// loginCmd opens the login view: the gate refuses it for authenticated
// users, otherwise credentials are exchanged for a session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Đăng nhập vào hệ thống đặt sân",
	RunE: func(cmd *cobra.Command, args []string) error {
		if d := gate.Decide(sess.Snapshot(), gate.DestLogin); d.Outcome == gate.OutcomeRedirect {
			pterm.Info.Printf("Bạn đã đăng nhập với tài khoản %s\n", sess.Snapshot().User.Username)
			return nil
		}

		username := loginUsername
		var err error
		if username == "" {
			if username, err = promptLine("Tên đăng nhập"); err != nil {
				return err
			}
		}
		password, err := promptPassword("Mật khẩu")
		if err != nil {
			return err
		}

		if err := sess.Login(cmd.Context(), username, password); err != nil {
			return presentFailure(err, notify.KeyLoginFailed, "đăng nhập")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Tên đăng nhập")
}

// presentFailure shows an operation failure to the user and returns the
// error for the process exit code. Transport errors get the friendly
// network treatment; everything else becomes a toast, with field-level
// errors listed when the server sent any.
func presentFailure(err error, key, action string) error {
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return err
	}
	if apiErr.Kind == backend.KindTransport {
		return httperrors.Present(apiErr, action)
	}
	toast.Failure(key, apiErr.Message)
	if len(apiErr.Fields) > 0 {
		toast.FieldErrors(apiErr.Fields)
	}
	return err
}
