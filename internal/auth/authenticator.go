package auth

import (
	"context"

	"github.com/nebaware/temariware/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The service layer only depends on this interface, so passwords can later
// be replaced with passkeys or a gateway-issued identity.
type Authenticator interface {
	// Register creates a new user account and its wallet. The credential
	// format depends on the implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// requirements.
	ValidateCredential(credential string) error
}
