package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/gate"
)

// routesCmd prints the destination registry and what the gate decides for
// each destination under the current session.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Liệt kê các trang và quyền truy cập hiện tại",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := sess.Snapshot()
		rows := pterm.TableData{{"Trang", "Yêu cầu", "Kết quả"}}
		for _, dest := range gate.Destinations() {
			d := gate.Decide(snap, dest.Name)
			outcome := d.Outcome.String()
			if d.Outcome == gate.OutcomeRedirect {
				outcome += " → " + d.Target
			}
			rows = append(rows, []string{dest.Name, requirementLabel(dest.Requirement), outcome})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func requirementLabel(req gate.Requirement) string {
	switch req.Access {
	case gate.AccessAnonymousOnly:
		return "chưa đăng nhập"
	case gate.AccessAuthenticated:
		if req.RoleRequired {
			return "đăng nhập + " + req.Role.String()
		}
		return "đăng nhập"
	default:
		return "công khai"
	}
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
