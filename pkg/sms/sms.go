// Package sms sends transactional text messages through Twilio or AWS SNS.
package sms

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidNumber = errors.New("phone number cannot be converted to E.164")

type SMSProvider interface {
	SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error)
}

type SMSRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

type SMSResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// ToE164 normalizes a number as typed by a customer. Numbers without a
// country code get defaultCountryCode, e.g. "+91".
func ToE164(phone, defaultCountryCode string) (string, error) {
	phone = strings.TrimSpace(phone)
	international := strings.HasPrefix(phone, "+") || strings.HasPrefix(phone, "00")

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	switch {
	case strings.HasPrefix(phone, "00"):
		number = strings.TrimPrefix(number, "00")
	case !international:
		number = strings.TrimLeft(number, "0")
		number = strings.TrimPrefix(defaultCountryCode, "+") + number
	}

	if len(number) < 8 || len(number) > 15 {
		return "", ErrInvalidNumber
	}
	return "+" + number, nil
}
