// Package httperrors presents network failures against the booking
// service in a user-friendly way. The wrapped error is still returned so
// verbose logs keep the technical detail.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/logging"
)

// Present prints a friendly explanation of a transport failure that
// happened while performing the described action, then returns the error
// wrapped for logging.
func Present(err error, action string) error {
	if err == nil {
		return nil
	}
	switch {
	case isTimeout(err):
		pterm.Error.Printf("Hết thời gian chờ khi %s\n", action)
		pterm.Println("Máy chủ phản hồi quá chậm. Vui lòng thử lại sau ít phút.")
	case isDNS(err):
		pterm.Error.Printf("Không phân giải được địa chỉ máy chủ khi %s\n", action)
		pterm.Println("Kiểm tra kết nối mạng và cấu hình base_url trong config.json.")
	case isConnectionRefused(err):
		pterm.Error.Printf("Máy chủ từ chối kết nối khi %s\n", action)
		pterm.Println("Dịch vụ có thể đang bảo trì. Vui lòng thử lại sau.")
	default:
		pterm.Error.Printf("Không kết nối được tới máy chủ khi %s\n", action)
		pterm.Debug.Println(logging.Mask(err.Error()))
	}
	return fmt.Errorf("network error: %w", err)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
