package infrastructure

import "go.uber.org/zap"

// NoEmail is the sender used when no SMTP server has been configured.
// Invitation links are still returned to the board owner.
type NoEmail struct{}

func (s *NoEmail) Send(address, subject, body string) error {
	zap.L().Debug("email sending disabled, message dropped", zap.String("subject", subject))
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
