// Package notify renders user-facing notifications with pterm. Messages
// are localized; Vietnamese is the default of the booking platform, with
// English available via config.
package notify

import (
	"github.com/pterm/pterm"

	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/logging"
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/internal/session"
)

// Failure keys for localized generic messages, used when the server's
// error payload lacks a message of its own.
const (
	KeyLoginFailed    = "login_failed"
	KeyRegisterFailed = "register_failed"
	KeyUpdateFailed   = "update_failed"
	KeyPasswordFailed = "password_failed"
)

var successMessages = map[session.Event]map[string]string{
	session.EventLoggedIn:        {"vi": "Đăng nhập thành công!", "en": "Logged in successfully!"},
	session.EventRegistered:      {"vi": "Đăng ký thành công!", "en": "Registered successfully!"},
	session.EventLoggedOut:       {"vi": "Đăng xuất thành công!", "en": "Logged out successfully!"},
	session.EventProfileUpdated:  {"vi": "Cập nhật thông tin thành công!", "en": "Profile updated successfully!"},
	session.EventPasswordChanged: {"vi": "Đổi mật khẩu thành công!", "en": "Password changed successfully!"},
}

var failureMessages = map[string]map[string]string{
	KeyLoginFailed:    {"vi": "Đăng nhập thất bại", "en": "Login failed"},
	KeyRegisterFailed: {"vi": "Đăng ký thất bại", "en": "Registration failed"},
	KeyUpdateFailed:   {"vi": "Cập nhật thất bại", "en": "Update failed"},
	KeyPasswordFailed: {"vi": "Đổi mật khẩu thất bại", "en": "Password change failed"},
}

// Toast prints non-blocking notifications to the terminal. It implements
// session.Notifier.
type Toast struct {
	locale string
}

var _ session.Notifier = (*Toast)(nil)

// New returns a Toast for the given locale; unknown locales fall back to
// English.
func New(locale string) *Toast {
	if locale != "vi" && locale != "en" {
		locale = "en"
	}
	return &Toast{locale: locale}
}

// Success prints the localized success message for the event.
func (t *Toast) Success(ev session.Event) {
	if msgs, ok := successMessages[ev]; ok {
		pterm.Success.Println(msgs[t.locale])
	}
}

// Failure prints the server's message when present, otherwise the
// localized generic for the given key. The message is masked before
// display.
func (t *Toast) Failure(key, serverMessage string) {
	msg := serverMessage
	if msg == "" {
		msg = failureMessages[key][t.locale]
	}
	pterm.Error.Println(logging.Mask(msg))
}

// FieldErrors renders a field-keyed validation payload for field-level
// display, one bullet per field message.
func (t *Toast) FieldErrors(fields map[string][]string) {
	for field, msgs := range fields {
		for _, msg := range msgs {
			pterm.Printf("  • %s: %s\n", field, logging.Mask(msg))
		}
	}
}
