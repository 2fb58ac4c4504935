// Package identity adapts Firebase Authentication to the domain's
// IdentityProvider interface. Credentials live entirely in Firebase;
// this package never sees password hashes.
package identity

import (
	"context"
	"fmt"

	"fixly/config"
	"fixly/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider creates an identity provider backed by Firebase Auth.
func NewFirebaseProvider(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityProvider, error) {
	if cfg == nil {
		return nil, errors.New("firebase config is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseProvider{
		client: client,
	}, nil
}

// CreateIdentity registers a new Firebase user and returns its uid.
func (p *firebaseProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", service.ErrEmailExists
		}

		return "", errors.Wrap(err, "failed to create identity")
	}

	return user.UID, nil
}

// DeleteIdentity removes a Firebase user by uid.
func (p *firebaseProvider) DeleteIdentity(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to delete identity")
	}

	return nil
}

// VerifyToken validates a Firebase ID token and returns the uid it was
// issued for.
func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify identity token")
	}

	return decoded.UID, nil
}
