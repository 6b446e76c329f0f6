package email

import "fmt"

// WelcomeMessage builds the registration welcome email.
func WelcomeMessage(to, firstName string) Message {
	name := firstName
	if name == "" {
		name = "there"
	}

	text := fmt.Sprintf(
		"Hi %s,\n\nYour CareLink account is ready. You can now sign in, create patient records and manage doctor assignments.\n\nIf you did not create this account, please contact your administrator.\n",
		name,
	)

	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your CareLink account is ready. You can now sign in, create patient records and manage doctor assignments.</p><p>If you did not create this account, please contact your administrator.</p>`,
		name,
	)

	return Message{
		To:       []string{to},
		Subject:  "Welcome to CareLink",
		TextBody: text,
		HTMLBody: html,
	}
}
