package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   logger,
	}
}

const welcomeHTML = `<div style="font-family:sans-serif">
<h2>Welcome to OffbeatTrips, %s!</h2>
<p>Your account is ready. Start exploring packages, trips and stories from
travellers like you.</p>
</div>`

// SendWelcomeEmail is fired asynchronously after registration; failures are
// logged and never surfaced to the caller.
func (s *EmailService) SendWelcomeEmail(to, name string) error {
	if to == "" {
		return nil
	}
	if name == "" {
		name = "traveller"
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Welcome to OffbeatTrips!",
		Html:    fmt.Sprintf(welcomeHTML, name),
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("failed to send welcome email", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("welcome email sent", zap.String("to", to), zap.String("id", resp.Id))
	return nil
}
