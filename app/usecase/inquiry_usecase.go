package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// InquiryUseCase implements inquiry intake and triage. Submissions
// arrive unauthenticated from client marketing sites; reading and
// status changes happen behind the gate.
type InquiryUseCase struct {
	inquiryRepo port.InquiryRepository
	clientRepo  port.ClientRepository
	logger      *slog.Logger
}

// NewInquiryUseCase creates a new InquiryUseCase instance
func NewInquiryUseCase(
	inquiryRepo port.InquiryRepository,
	clientRepo port.ClientRepository,
	logger *slog.Logger,
) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		clientRepo:  clientRepo,
		logger:      logger.With("component", "inquiry_usecase"),
	}
}

// SubmitInquiry records a public contact-form submission. The target
// client must exist and be active; suspended clients stop receiving
// inquiries.
func (uc *InquiryUseCase) SubmitInquiry(ctx context.Context, clientID uuid.UUID, req *domain.SubmitInquiryRequest) (*domain.Inquiry, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if !client.IsActive() {
		return nil, domain.ErrClientSuspended
	}

	inquiry, err := domain.NewInquiry(clientID, req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return nil, err
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	uc.logger.Info("inquiry submitted", "inquiry_id", inquiry.ID, "client_id", clientID)

	return inquiry, nil
}

// GetInquiry retrieves an inquiry within the client
func (uc *InquiryUseCase) GetInquiry(ctx context.Context, clientID, inquiryID uuid.UUID) (*domain.Inquiry, error) {
	return uc.inquiryRepo.GetByID(ctx, clientID, inquiryID)
}

// ListInquiries lists the client's inquiries with pagination
func (uc *InquiryUseCase) ListInquiries(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Inquiry, error) {
	limit = normalizeLimit(limit)
	return uc.inquiryRepo.ListByClient(ctx, clientID, limit, offset)
}

// UpdateInquiryStatus moves an inquiry through triage
func (uc *InquiryUseCase) UpdateInquiryStatus(ctx context.Context, clientID, inquiryID uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, clientID, inquiryID)
	if err != nil {
		return nil, err
	}

	if err := inquiry.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := uc.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	uc.logger.Info("inquiry status updated",
		"inquiry_id", inquiryID,
		"client_id", clientID,
		"status", status)

	return inquiry, nil
}
