// utils/firebase.go
package utils

import (
	"context"
	"log"

	"anndann/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	FCMClient       *messaging.Client
)

// FirebaseInit initializes the Firebase App. Credentials come from
// FIREBASE_CREDENTIALS_FILE when set, otherwise from the ambient
// application default credentials.
func FirebaseInit() {
	ctx := context.Background()

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	var fbConfig *firebase.Config
	if id := config.AppConfig.FirebaseProjectID; id != "" {
		fbConfig = &firebase.Config{ProjectID: id}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	FirebaseApp = app
}

// GetFirestoreClient returns the Firestore client, creating it on first use.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient != nil {
		return FirestoreClient
	}
	if FirebaseApp == nil {
		FirebaseInit()
	}
	client, err := FirebaseApp.Firestore(context.Background())
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}
	FirestoreClient = client
	return client
}

// GetFCMClient returns the Messaging client, creating it on first use.
func GetFCMClient() *messaging.Client {
	if FCMClient != nil {
		return FCMClient
	}
	if FirebaseApp == nil {
		FirebaseInit()
	}
	client, err := FirebaseApp.Messaging(context.Background())
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = client
	return client
}
