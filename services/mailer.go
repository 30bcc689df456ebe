package services

import "go.uber.org/zap"

// Mailer คือ collaborator ภายนอก — ระบบนี้ไม่ทำ email delivery เอง
type Mailer interface {
	SendVerificationCode(email, code string) error
}

// LogMailer ใช้แทนระบบเมลจริงใน dev: log อย่างเดียว
type LogMailer struct {
	Log *zap.Logger
}

func (m *LogMailer) SendVerificationCode(email, code string) error {
	m.Log.Info("verification code issued", zap.String("email", email), zap.String("code", code))
	return nil
}
