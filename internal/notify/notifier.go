package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"dayplan/internal/model"
)

// DesktopNotifier is the platform notification surface. Both operations are
// best-effort: a notifier that cannot deliver reports an error and the caller
// carries on.
type DesktopNotifier interface {
	RequestPermission() (bool, error)
	Send(title, body string, typ model.NotificationType) error
}

// NoopNotifier is used when desktop notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) RequestPermission() (bool, error) { return false, nil }

func (NoopNotifier) Send(string, string, model.NotificationType) error { return nil }

// ExecNotifier shells out to the platform notification tool.
type ExecNotifier struct{}

func (ExecNotifier) RequestPermission() (bool, error) {
	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return false, nil
		}
		return true, nil
	case "darwin":
		if _, err := exec.LookPath("osascript"); err != nil {
			return false, nil
		}
		return true, nil
	default:
		return false, nil
	}
}

func (ExecNotifier) Send(title, body string, typ model.NotificationType) error {
	switch runtime.GOOS {
	case "linux":
		urgency := "normal"
		if typ == model.NotificationError {
			urgency = "critical"
		}
		return exec.Command("notify-send", "--urgency", urgency, title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
