package notifier

import (
	"fmt"
	"log"
	"time"
)

// Notifier เป็น interface เผื่อเปลี่ยนวิธีแจ้งเตือน (Email/LINE/Slack/SMS)
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier (MVP) — log ออก console
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}

// HumanCheckin formats an arrival timestamp for notification text.
func HumanCheckin(at time.Time) string {
	return fmt.Sprintf("checked in %s", at.Local().Format("2006-01-02 15:04"))
}
