package kratos

import (
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"

	"backoffice-api/app/domain"
	apperrors "backoffice-api/app/utils/errors"
)

// transformSessionError maps a Kratos whoami failure to a domain
// error. Anything the provider rejects as unauthenticated collapses
// to ErrNotAuthenticated; other failures surface as classified
// provider errors so callers can distinguish outage from rejection.
func transformSessionError(err error, httpResp *http.Response) error {
	status := getHTTPStatus(httpResp)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrNotAuthenticated
	case http.StatusGone:
		return domain.ErrSessionExpired
	}

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		return apperrors.Wrap(apperrors.ErrCodeIdentityProvider, "identity provider error", err).
			WithDetails(kratosErr.Error()).
			WithContext("http_status", status)
	}

	return apperrors.Wrap(apperrors.ErrCodeIdentityProvider, "identity provider unreachable", err)
}

// getHTTPStatus safely extracts the status code from a response
func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
