package wizard

import (
	"context"

	"studiorental/internal/domain"
)

// SubmissionSender is the external collaborator that durably records a
// completed booking (and fans out whatever notifications it owns). The
// reference travels alongside the payload so correlating systems can log it
// without it being part of the payload contract.
type SubmissionSender interface {
	SubmitBooking(ctx context.Context, reference string, payload *SubmissionPayload) (correlationID string, err error)
}

// CatalogProvider supplies the read-only catalog snapshot a new session is
// bound to.
type CatalogProvider interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}
