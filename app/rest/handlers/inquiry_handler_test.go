package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-api/app/domain"
	mock_port "backoffice-api/app/mocks"
)

func TestSubmitInquiry_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
	clientUsecase := mock_port.NewMockClientUsecase(ctrl)
	handler := NewInquiryHandler(inquiryUsecase, clientUsecase, testLogger())

	client := &domain.Client{
		ID:     uuid.New(),
		Slug:   "acme",
		Name:   "Acme Corp",
		Status: domain.ClientStatusActive,
	}
	clientUsecase.EXPECT().
		GetClientBySlug(gomock.Any(), "acme").
		Return(client, nil)

	inquiry := &domain.Inquiry{
		ID:       uuid.New(),
		ClientID: client.ID,
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Message:  "Interested in your services.",
		Status:   domain.InquiryStatusNew,
	}
	inquiryUsecase.EXPECT().
		SubmitInquiry(gomock.Any(), client.ID, gomock.Any()).
		Return(inquiry, nil)

	body := `{"name": "Jamie Doe", "email": "jamie@example.com", "message": "Interested in your services."}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/v1/public/clients/acme/inquiries", body, nil)
	c.SetParamNames("slug")
	c.SetParamValues("acme")

	require.NoError(t, handler.SubmitInquiry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, client.ID, got.ClientID)
	assert.Equal(t, domain.InquiryStatusNew, got.Status)
}

func TestSubmitInquiry_UnknownClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
	clientUsecase := mock_port.NewMockClientUsecase(ctrl)
	handler := NewInquiryHandler(inquiryUsecase, clientUsecase, testLogger())

	clientUsecase.EXPECT().
		GetClientBySlug(gomock.Any(), "ghost").
		Return(nil, domain.ErrClientNotFound)

	body := `{"name": "Jamie Doe", "email": "jamie@example.com", "message": "Hello there."}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/v1/public/clients/ghost/inquiries", body, nil)
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	require.NoError(t, handler.SubmitInquiry(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitInquiry_MalformedSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
	clientUsecase := mock_port.NewMockClientUsecase(ctrl)
	handler := NewInquiryHandler(inquiryUsecase, clientUsecase, testLogger())

	body := `{"name": "Jamie Doe", "email": "jamie@example.com", "message": "Hello there."}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/v1/public/clients/Not%20A%20Slug/inquiries", body, nil)
	c.SetParamNames("slug")
	c.SetParamValues("Not A Slug")

	require.NoError(t, handler.SubmitInquiry(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "client not found"}`, rec.Body.String())
}

func TestSubmitInquiry_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
	clientUsecase := mock_port.NewMockClientUsecase(ctrl)
	handler := NewInquiryHandler(inquiryUsecase, clientUsecase, testLogger())

	client := &domain.Client{
		ID:     uuid.New(),
		Slug:   "acme",
		Name:   "Acme Corp",
		Status: domain.ClientStatusActive,
	}
	clientUsecase.EXPECT().
		GetClientBySlug(gomock.Any(), "acme").
		Return(client, nil)

	body := `{"name": "J", "email": "not-an-email", "message": ""}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/v1/public/clients/acme/inquiries", body, nil)
	c.SetParamNames("slug")
	c.SetParamValues("acme")

	require.NoError(t, handler.SubmitInquiry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateInquiryStatus_Triage(t *testing.T) {
	ctrl := gomock.NewController(t)
	inquiryUsecase := mock_port.NewMockInquiryUsecase(ctrl)
	clientUsecase := mock_port.NewMockClientUsecase(ctrl)
	handler := NewInquiryHandler(inquiryUsecase, clientUsecase, testLogger())

	activeClient := uuid.New()
	inquiryID := uuid.New()
	authCtx := domain.AuthContext{
		UserID:         uuid.New(),
		Email:          "employee@example.com",
		Role:           domain.RoleEmployee,
		ActiveClientID: &activeClient,
	}

	updated := &domain.Inquiry{
		ID:       inquiryID,
		ClientID: activeClient,
		Status:   domain.InquiryStatusClosed,
	}
	inquiryUsecase.EXPECT().
		UpdateInquiryStatus(gomock.Any(), activeClient, inquiryID, domain.InquiryStatusClosed).
		Return(updated, nil)

	body := `{"status": "closed"}`
	c, rec := newBlogTestContext(t, http.MethodPut, "/v1/inquiries/"+inquiryID.String()+"/status", body, &authCtx)
	c.SetParamNames("inquiryId")
	c.SetParamValues(inquiryID.String())

	require.NoError(t, handler.UpdateInquiryStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
