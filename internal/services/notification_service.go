package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vyronex/internal/models"
	"vyronex/internal/utils"
	"vyronex/pkg/logger"
	"vyronex/pkg/push"
	"vyronex/pkg/sms"

	"golang.org/x/sync/errgroup"
)

const notificationTimeout = 10 * time.Second

// Broadcaster pushes events to connected staff dashboards.
type Broadcaster interface {
	Broadcast(ctx context.Context, messageType string, data map[string]interface{}) error
}

// NotificationService delivers submission notices in the background. Wait
// blocks until every notice already handed over has been delivered or dropped.
type NotificationService interface {
	TestDriveBooked(ctx context.Context, booking *models.TestDriveBooking)
	CustomizationRequested(ctx context.Context, request *models.CustomizationRequest)
	Wait()
}

type NotificationConfig struct {
	CountryCode string
	SenderID    string
	StaffTopic  string
}

type notificationService struct {
	sms    sms.SMSProvider
	push   push.PushProvider
	feed   Broadcaster
	config NotificationConfig
	logger *logger.Logger

	inflight sync.WaitGroup
}

// NewNotificationService wires the channels that are configured; nil
// providers are skipped.
func NewNotificationService(smsProvider sms.SMSProvider, pushProvider push.PushProvider, feed Broadcaster, config NotificationConfig, log *logger.Logger) NotificationService {
	if config.CountryCode == "" {
		config.CountryCode = "+91"
	}
	return &notificationService{
		sms:    smsProvider,
		push:   pushProvider,
		feed:   feed,
		config: config,
		logger: log,
	}
}

func (s *notificationService) TestDriveBooked(ctx context.Context, booking *models.TestDriveBooking) {
	s.send(ctx, notification{
		event:    utils.EventTestDriveBooked,
		recordID: booking.ID,
		phone:    booking.CustomerPhone,
		sms: fmt.Sprintf("%s: thank you %s, we received your test drive request for the %s on %s at %s. We will contact you shortly to confirm.",
			utils.AppName, booking.CustomerName, booking.CarModel, booking.PreferredDate, booking.PreferredTime),
		title: "New test drive booking",
		body:  fmt.Sprintf("%s booked the %s for %s %s", booking.CustomerName, booking.CarModel, booking.PreferredDate, booking.PreferredTime),
		data: map[string]interface{}{
			"bookingId":     booking.ID,
			"customerName":  booking.CustomerName,
			"carModel":      booking.CarModel,
			"preferredDate": booking.PreferredDate,
			"preferredTime": booking.PreferredTime,
		},
	})
}

func (s *notificationService) CustomizationRequested(ctx context.Context, request *models.CustomizationRequest) {
	s.send(ctx, notification{
		event:    utils.EventCustomizationRequested,
		recordID: request.ID,
		phone:    request.CustomerPhone,
		sms: fmt.Sprintf("%s: thank you %s, we received your customization request \"%s\". Our customization team will contact you shortly.",
			utils.AppName, request.CustomerName, request.RequestTitle),
		title: "New customization request",
		body:  fmt.Sprintf("%s: %s", request.CustomerName, request.RequestTitle),
		data: map[string]interface{}{
			"requestId":       request.ID,
			"customerName":    request.CustomerName,
			"requestTitle":    request.RequestTitle,
			"selectedOptions": len(request.SelectedOptions),
		},
	})
}

type notification struct {
	event    string
	recordID string
	phone    string
	sms      string
	title    string
	body     string
	data     map[string]interface{}
}

func (s *notificationService) Wait() {
	s.inflight.Wait()
}

// send hands n to a background goroutine detached from the request.
func (s *notificationService) send(ctx context.Context, n notification) {
	ctx = context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.dispatch(ctx, n)
	}()
}

// dispatch fans out to every channel and waits for them. Failures are logged only.
func (s *notificationService) dispatch(ctx context.Context, n notification) {
	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	log := s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":     n.event,
		"record_id": n.recordID,
	})

	var g errgroup.Group

	if s.sms != nil && n.phone != "" {
		g.Go(func() error {
			to, err := sms.ToE164(n.phone, s.config.CountryCode)
			if err != nil {
				return fmt.Errorf("sms: %w", err)
			}
			_, err = s.sms.SendSMS(ctx, &sms.SMSRequest{To: to, Message: n.sms, SenderID: s.config.SenderID})
			return err
		})
	}

	if s.push != nil && s.config.StaffTopic != "" {
		g.Go(func() error {
			_, err := s.push.SendNotification(ctx, &push.NotificationRequest{
				Topic:       s.config.StaffTopic,
				Title:       n.title,
				Body:        n.body,
				Data:        stringData(n.data),
				CollapseKey: n.event,
			})
			return err
		})
	}

	if s.feed != nil {
		g.Go(func() error {
			return s.feed.Broadcast(ctx, n.event, n.data)
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("Notification delivery failed")
		return
	}
	log.Debug("Notifications dispatched")
}

func stringData(data map[string]interface{}) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = fmt.Sprint(v)
	}
	return out
}
