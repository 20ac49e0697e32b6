// Package sender потребляет задания на напоминания из RabbitMQ,
// строит ссылку WhatsApp с готовым текстом и отправляет её
// оператору зала по электронной почте.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/lib/smtp"
	"github.com/alaagym/gym-ledger/internal/lib/whatsapp"
	"github.com/alaagym/gym-ledger/internal/models"
)

// SenderService доставляет напоминания оператору.
type SenderService struct {
	transport    smtp.TransportInterface
	operatorMail string
	log          *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, operatorMail string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport:    transport,
		operatorMail: operatorMail,
		log:          log,
	}
}

// SendExpiringReminder обрабатывает задание из очереди reminder.expiring.
func (s *SenderService) SendExpiringReminder(body []byte) error {
	return s.send(body, "تنبيه: اشتراك قارب على الانتهاء")
}

// SendDebtReminder обрабатывает задание из очереди reminder.debt.
func (s *SenderService) SendDebtReminder(body []byte) error {
	return s.send(body, "تنبيه: مبلغ متبقي على مشترك")
}

func (s *SenderService) send(body []byte, subject string) error {
	var job models.ReminderJob
	if err := json.Unmarshal(body, &job); err != nil {
		s.log.Error("failed to unmarshal reminder job", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	bodyText := BuildEmailBody(job)
	if err := s.sendEmail([]string{s.operatorMail}, subject, bodyText); err != nil {
		return err
	}

	s.log.Info("reminder delivered",
		slog.String("member_id", job.MemberID),
		slog.String("kind", string(job.Kind)))
	return nil
}

// BuildEmailBody собирает тело письма: кто, что и готовая ссылка
// wa.me, по которой оператору остаётся только кликнуть.
func BuildEmailBody(job models.ReminderJob) string {
	lines := []string{
		fmt.Sprintf("العضو: %s (%s)", job.Name, job.Phone),
		fmt.Sprintf("الاشتراك: %s", job.PlanName),
		fmt.Sprintf("تاريخ الانتهاء: %s", job.EndDate),
	}
	if job.Kind == models.ReminderDebt {
		lines = append(lines, fmt.Sprintf("المبلغ المتبقي: %.2f", job.RemainingAmount))
	}
	lines = append(lines,
		"",
		"رسالة واتساب الجاهزة:",
		whatsapp.ReminderMessage(job),
		"",
		"رابط الإرسال:",
		whatsapp.ReminderLink(job),
	)
	return strings.Join(lines, "\n")
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
