// Package mailer sends transactional mail through Gmail SMTP.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type Service struct {
	from   string
	dialer *gomail.Dialer
}

func NewService(user, pass string) *Service {
	return &Service{
		from:   user,
		dialer: gomail.NewDialer("smtp.gmail.com", 587, user, pass),
	}
}

// Send delivers a plain-text + HTML message to a single recipient.
func (s *Service) Send(to, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, "Cropadvisor"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", fmt.Sprintf("Hello!\n\n%s\n\nThanks for using Cropadvisor.", message))
	m.AddAlternative("text/html", fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; color: #333;">
		  <h2>Hello!</h2>
		  <p>%s</p>
		  <br/>
		  <p>Thanks for using <strong>Cropadvisor</strong>.</p>
		</div>`, message))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
