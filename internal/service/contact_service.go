package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/mailer"
	"github.com/runhub/directory-api/internal/models"
)

// contactService relays contact form messages to the admin inbox.
// Unlike the approval flows, the send here is the whole operation, so
// a mailer failure is surfaced to the caller.
type contactService struct {
	mailer mailer.Mailer
	log    zerolog.Logger
}

func newContactService(mail mailer.Mailer, log zerolog.Logger) *contactService {
	return &contactService{
		mailer: mail,
		log:    log.With().Str("service", "contact").Logger(),
	}
}

// Send relays the message
func (s *contactService) Send(ctx context.Context, req *models.ContactRequest) error {
	if err := s.mailer.SendContactMessage(ctx, req); err != nil {
		return fmt.Errorf("failed to relay contact message: %w", err)
	}

	s.log.Info().Str("from", req.Email).Str("subject", req.Subject).Msg("Contact message relayed")
	return nil
}
