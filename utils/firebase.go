// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// NewFCMClient initializes the Firebase App and returns its Messaging client.
func NewFCMClient(ctx context.Context, credentialsFile string) (*messaging.Client, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("firebase: FIREBASE_CREDENTIALS_FILE is not set")
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}
	return client, nil
}
