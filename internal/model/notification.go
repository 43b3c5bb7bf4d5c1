package model

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationError, NotificationInfo, NotificationWarning:
		return true
	default:
		return false
	}
}

// Title maps a notification type to the headline used on the desktop
// notification surface.
func (t NotificationType) Title() string {
	switch t {
	case NotificationSuccess:
		return "Task Completed"
	case NotificationError:
		return "Task Deleted"
	case NotificationInfo:
		return "Task Updated"
	default:
		return "Task Manager"
	}
}

// Notification is the transient feedback value shown after a store mutation.
// It lives for one display cycle and is never persisted.
type Notification struct {
	Message string
	Type    NotificationType
}
