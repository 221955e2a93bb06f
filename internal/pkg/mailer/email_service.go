package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"admissions-chat-be/internal/entity"
)

type IEmailService interface {
	SendLeadAlert(lead *entity.Lead) error
}

type emailService struct {
	dialer          *gomail.Dialer
	senderEmail     string
	admissionsInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, admissionsInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:          d,
		senderEmail:     senderEmail,
		admissionsInbox: admissionsInbox,
	}
}

// SendLeadAlert notifies the admissions team about a freshly captured lead.
func (s *emailService) SendLeadAlert(lead *entity.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.admissionsInbox)
	m.SetHeader("Subject", fmt.Sprintf("New chatbot lead: %s", lead.Name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Lead Captured</h2>
			<p>The admissions chatbot just identified a visitor:</p>
			<ul>
				<li><b>Name:</b> %s</li>
				<li><b>Phone:</b> %s</li>
				<li><b>Visitor type:</b> %s</li>
				<li><b>Session:</b> %s</li>
			</ul>
			<p>Please follow up within your usual response window.</p>
		</div>
	`, lead.Name, lead.Phone, lead.UserType, lead.SessionId)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
