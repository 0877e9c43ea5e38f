// Package ban tracks rate-limit strikes per client and alerts operators
// when abuse persists.
package ban

import (
	"fmt"
	"net/smtp"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/princesinghgemini-dotcom/veto/internal/observability/logger"
)

// MailConfig carries the SMTP settings for ban alerts. Alerts are skipped
// when To is empty.
type MailConfig struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

// alertThreshold is the strike count at which an alert email goes out.
const alertThreshold = 10

var (
	mu      sync.Mutex
	strikes = map[string]int{}
	mail    MailConfig
)

// SetMailConfig installs the SMTP settings. Call once at startup.
func SetMailConfig(cfg MailConfig) {
	mail = cfg
}

// RecordStrike increments the strike count for a client and fires an alert
// when the threshold is crossed. Returns the new count.
func RecordStrike(target, route string) int {
	mu.Lock()
	strikes[target]++
	count := strikes[target]
	mu.Unlock()

	if count == alertThreshold {
		sendAlertEmail(target, route, count)
	}
	return count
}

func sendAlertEmail(target, route string, count int) {
	if mail.To == "" {
		return
	}

	subject := fmt.Sprintf("BAN ALERT: %s blocked", target)
	body := fmt.Sprintf("Target: %s\nRoute: %s\nStrikes: %d\nTime: %s",
		target, route, count, time.Now().Format(time.RFC3339))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		mail.From, mail.To, subject, body)

	addr := fmt.Sprintf("%s:%s", mail.Server, mail.Port)
	auth := smtp.PlainAuth("", mail.User, mail.Password, mail.Server)
	if mail.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, mail.From, []string{mail.To}, []byte(msg)); err != nil {
			logger.L().Error("failed to send ban alert email", zap.Error(err))
		}
	}()
}

// StartDailyBanSummary logs the accumulated strikes once per interval and
// resets the counters. Run as a goroutine from main.
func StartDailyBanSummary(interval time.Duration) {
	for {
		time.Sleep(interval)

		mu.Lock()
		summary := strikes
		strikes = map[string]int{}
		mu.Unlock()

		if len(summary) == 0 {
			continue
		}
		for target, count := range summary {
			logger.L().Info("ban summary",
				zap.String("target", target),
				zap.Int("strikes", count))
		}
	}
}

// ResetStrikes clears all counters. Test helper.
func ResetStrikes() {
	mu.Lock()
	strikes = map[string]int{}
	mu.Unlock()
}
