package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. A Mailer with no host configured
// is a no-op, so local development works without a mail server.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// New creates a Mailer from SMTP settings.
func New(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// Enabled reports whether SMTP delivery is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.host != ""
}

// SendEvaluationLink mails the survey URL to the customer.
func (m *Mailer) SendEvaluationLink(to, attendant, url string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Avalie seu atendimento")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Olá!</p><p>Seu atendimento com <b>%s</b> foi concluído. "+
			"Avalie sua experiência pelo link abaixo (válido por 24 horas):</p>"+
			"<p><a href=%q>%s</a></p>",
		attendant, url, url,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
