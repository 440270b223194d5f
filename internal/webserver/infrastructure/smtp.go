package infrastructure

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTP struct {
	Server   string
	Port     int
	User     string
	Password string
}

func (s *SMTP) Send(address, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", "Corkboard", s.User))
	m.SetHeader("To", address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("error sending email", zap.String("server", s.Server), zap.Error(err))
		return err
	}

	return nil
}

func (s *SMTP) From() string {
	return s.User
}
