package push

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var ErrNoTopic = errors.New("notification topic is required")

type FCMProvider struct {
	client *messaging.Client
}

func NewFCMProvider(ctx context.Context, projectID, credentialsFile string) (*FCMProvider, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &FCMProvider{client: client}, nil
}

func (f *FCMProvider) SendNotification(ctx context.Context, request *NotificationRequest) (string, error) {
	message, err := BuildMessage(request)
	if err != nil {
		return "", err
	}

	id, err := f.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("fcm: %w", err)
	}
	return id, nil
}

// BuildMessage turns a request into a topic message with high Android priority.
func BuildMessage(request *NotificationRequest) (*messaging.Message, error) {
	if request.Topic == "" {
		return nil, ErrNoTopic
	}

	message := &messaging.Message{
		Topic: request.Topic,
		Data:  request.Data,
		Notification: &messaging.Notification{
			Title:    request.Title,
			Body:     request.Body,
			ImageURL: request.ImageURL,
		},
		Android: &messaging.AndroidConfig{
			Priority:    "high",
			CollapseKey: request.CollapseKey,
			Notification: &messaging.AndroidNotification{
				ChannelID: request.ChannelID,
			},
		},
	}

	return message, nil
}
