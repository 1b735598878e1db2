// Package mailer sends the directory's transactional email through
// Resend: the admin notification for new submissions, the approval
// confirmation to club contacts, and contact form relays.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/runhub/directory-api/internal/config"
	"github.com/runhub/directory-api/internal/models"
)

// Mailer defines the outbound email operations. Callers decide
// whether a send failure is fatal; approval and submission flows
// treat them as best-effort.
type Mailer interface {
	SendSubmissionNotification(ctx context.Context, club *models.ClubRecord) error
	SendApprovalConfirmation(ctx context.Context, club *models.ClubRecord) error
	SendContactMessage(ctx context.Context, req *models.ContactRequest) error
}

type resendMailer struct {
	client *resend.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// New creates a Resend-backed mailer
func New(cfg *config.Config, log zerolog.Logger) Mailer {
	return &resendMailer{
		client: resend.NewClient(cfg.Email.APIKey),
		cfg:    cfg,
		log:    log.With().Str("component", "mailer").Logger(),
	}
}

// SendSubmissionNotification emails the admin a summary of a new
// pending club with one-click approve and reject links.
func (m *resendMailer) SendSubmissionNotification(ctx context.Context, club *models.ClubRecord) error {
	actionURL := fmt.Sprintf("%s/v1/admin/clubs/%s", m.cfg.App.BaseURL, club.ApprovalToken)

	html, err := render(submissionTmpl, submissionData{
		Club:       club,
		ApproveURL: actionURL + "?action=approve",
		RejectURL:  actionURL + "?action=reject",
	})
	if err != nil {
		return err
	}

	return m.send(ctx, m.cfg.Email.AdminEmail,
		fmt.Sprintf("New Club Submission: %s", club.ClubName), html)
}

// SendApprovalConfirmation emails the club contact that their listing
// is live.
func (m *resendMailer) SendApprovalConfirmation(ctx context.Context, club *models.ClubRecord) error {
	html, err := render(approvalTmpl, approvalData{
		Club:    club,
		ClubURL: fmt.Sprintf("%s/clubs/%s", m.cfg.App.BaseURL, club.Slug),
	})
	if err != nil {
		return err
	}

	return m.send(ctx, club.ContactEmail,
		fmt.Sprintf("Welcome to RunHub Directory - %s Approved!", club.ClubName), html)
}

// SendContactMessage relays a contact form message to the admin inbox.
func (m *resendMailer) SendContactMessage(ctx context.Context, req *models.ContactRequest) error {
	html, err := render(contactTmpl, contactData{
		Request:     req,
		SubmittedAt: time.Now().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}

	return m.send(ctx, m.cfg.Email.AdminEmail,
		fmt.Sprintf("Contact Form: %s", req.Subject), html)
}

func (m *resendMailer) send(ctx context.Context, to, subject, html string) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.cfg.Email.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send email %q: %w", subject, err)
	}

	m.log.Info().
		Str("email_id", sent.Id).
		Str("to", to).
		Str("subject", subject).
		Msg("Email sent")

	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
