package config

import "time"

// Mail holds outbound SMTP credentials for contact notifications.
type Mail struct {
	Host     string
	Port     string
	User     string
	Password string
	FromName string
	// Inbox receives contact notifications; defaults to User.
	Inbox string
	// Timeout bounds one delivery, dial to QUIT.
	Timeout time.Duration
}

func MailConfig() Mail {
	user := GetEnv("MAIL_USER", "")
	return Mail{
		Host:     GetEnv("MAIL_HOST", "smtp.gmail.com"),
		Port:     GetEnv("MAIL_PORT", "587"),
		User:     user,
		Password: GetEnv("MAIL_PASS", ""),
		FromName: GetEnv("MAIL_FROM_NAME", "DGSTECH Support Team"),
		Inbox:    GetEnv("MAIL_INBOX", user),
		Timeout:  time.Duration(GetEnvInt("MAIL_TIMEOUT", 10)) * time.Second,
	}
}
