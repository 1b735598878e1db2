package mocks

import (
	"context"

	"github.com/runhub/directory-api/internal/models"
)

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	SubmissionNotifications []*models.ClubRecord
	ApprovalConfirmations   []*models.ClubRecord
	ContactMessages         []*models.ContactRequest
	SendError               error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendSubmissionNotification(ctx context.Context, club *models.ClubRecord) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.SubmissionNotifications = append(m.SubmissionNotifications, club)
	return nil
}

func (m *MockMailer) SendApprovalConfirmation(ctx context.Context, club *models.ClubRecord) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.ApprovalConfirmations = append(m.ApprovalConfirmations, club)
	return nil
}

func (m *MockMailer) SendContactMessage(ctx context.Context, req *models.ContactRequest) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.ContactMessages = append(m.ContactMessages, req)
	return nil
}
