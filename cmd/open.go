package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
)

// openCmd navigates to a named destination. The gate decides whether the
// view renders or where the navigation is redirected; the rendering
// itself is a placeholder, since the pages live in the web frontend.
var openCmd = &cobra.Command{
	Use:   "open <trang>",
	Short: "Mở một trang của ứng dụng",
	Long: `Mở một trang của ứng dụng đặt sân. Trang được kiểm tra quyền truy cập
theo phiên đăng nhập hiện tại: trang yêu cầu đăng nhập sẽ chuyển hướng về
trang đăng nhập, trang quản trị yêu cầu vai trò admin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		d := gate.Decide(sess.Snapshot(), name)
		switch d.Outcome {
		case gate.OutcomeLoading:
			// Unreachable after bootstrap, kept for the full decision table.
			pterm.Println("Đang tải...")
		case gate.OutcomeRedirect:
			pterm.Info.Printf("Chuyển hướng: %s → %s\n", name, d.Target)
			render(d.Target)
		case gate.OutcomeRender:
			render(name)
		}
		return nil
	},
}

func render(dest string) {
	fmt.Printf("— %s —\n", dest)
}

func init() {
	rootCmd.AddCommand(openCmd)
}
