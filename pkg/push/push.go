// Package push notifies showroom staff devices through Firebase Cloud
// Messaging topics.
package push

import "context"

type PushProvider interface {
	SendNotification(ctx context.Context, request *NotificationRequest) (string, error)
}

type NotificationRequest struct {
	Topic       string            `json:"topic"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	CollapseKey string            `json:"collapse_key,omitempty"`
	ChannelID   string            `json:"channel_id,omitempty"`
}
