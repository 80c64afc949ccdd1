package domain

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Subject string
	Body    string
	Email   string
}

// MailBody renders the text handed to the local mail transport.
func (m ContactMessage) MailBody() string {
	return m.Body + "\nReceived from: " + m.Email
}
