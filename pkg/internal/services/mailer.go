package services

import (
	"crypto/tls"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

func SendMail(recipient, subject, message string) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", viper.GetString("mailer.name"))
	mail.SetHeader("To", recipient)
	mail.SetHeader("Subject", subject)
	mail.SetBody("text/plain", message)

	dialer := gomail.NewDialer(
		viper.GetString("mailer.smtp_host"),
		viper.GetInt("mailer.smtp_port"),
		viper.GetString("mailer.username"),
		viper.GetString("mailer.password"),
	)
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: viper.GetBool("mailer.skip_tls_verify")}

	return dialer.DialAndSend(mail)
}
