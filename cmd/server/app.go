package main

import (
	"context"
	"fmt"
	"path"
	"time"

	"vyronex/internal/config"
	"vyronex/internal/handlers/api"
	"vyronex/internal/handlers/pages"
	"vyronex/internal/middleware"
	"vyronex/internal/models"
	"vyronex/internal/services"
	"vyronex/pkg/cache"
	"vyronex/pkg/database"
	"vyronex/pkg/logger"
	"vyronex/pkg/maps"
	"vyronex/pkg/push"
	"vyronex/pkg/records"
	"vyronex/pkg/sms"
	"vyronex/pkg/storage"
	"vyronex/pkg/websocket"
	"vyronex/routes"

	"github.com/gin-gonic/gin"
)

// app holds the wired dependencies of one process.
type app struct {
	cfg    *config.Config
	logger *logger.Logger

	store   records.Store
	records *records.Client
	redis   *cache.RedisCache
	hub     *websocket.Hub

	notifications services.NotificationService

	catalog       services.CatalogService
	bookings      services.TestDriveService
	customization services.CustomizationService
	showroom      services.ShowroomService
	staff         services.StaffService
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: log}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	a.store = store

	if cfg.Redis.Enabled {
		a.redis, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.store = records.NewCachedStore(store, a.redis, cfg.Redis.CacheTTL, log.WithField("component", "record_cache"))
	}

	a.records = records.NewClient(a.store, models.Schema())

	uploads, err := a.storageProvider(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	notifier, err := a.notifier(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.notifications = notifier

	geocoder, err := a.geocoder()
	if err != nil {
		a.Close()
		return nil, err
	}

	var geocodeCache services.JSONCache
	if a.redis != nil {
		geocodeCache = a.redis
	}

	a.catalog = services.NewCatalogService(a.records)
	a.bookings = services.NewTestDriveService(a.records, a.catalog, notifier, log)
	a.customization = services.NewCustomizationService(a.records, uploads, notifier, cfg.Storage.MaxUploadSize, log)
	a.showroom = services.NewShowroomService(geocoder, geocodeCache, services.ShowroomConfig{
		Address:          cfg.Maps.ShowroomAddress,
		DefaultLatitude:  cfg.Maps.DefaultLatitude,
		DefaultLongitude: cfg.Maps.DefaultLongitude,
	}, log)
	a.staff = services.NewStaffService(services.StaffConfig{
		Username:  cfg.Security.AdminUsername,
		Password:  cfg.Security.AdminPassword,
		JWTSecret: cfg.Security.JWTSecret,
		TokenTTL:  cfg.Security.JWTAccessTokenTTL,
	})

	return a, nil
}

func (a *app) openStore(ctx context.Context) (records.Store, error) {
	if a.cfg.Database.Driver == config.StoreDriverMemory {
		a.logger.Warn("Using the in-memory store; records are lost on restart")
		return records.NewMemoryStore(), nil
	}

	db, err := database.NewMongoDB(ctx, &database.DatabaseConfig{
		URI:            a.cfg.Database.URI,
		Database:       a.cfg.Database.Database,
		AppName:        a.cfg.App.Name,
		MaxPoolSize:    a.cfg.Database.MaxPoolSize,
		MinPoolSize:    a.cfg.Database.MinPoolSize,
		ConnectTimeout: a.cfg.Database.ConnectTimeout,
		SocketTimeout:  a.cfg.Database.SocketTimeout,
	})
	if err != nil {
		return nil, err
	}

	if a.cfg.Database.Migrate {
		if err := database.NewMigrator(db.Database, a.logger).Up(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return records.NewMongoStore(db.Database), nil
}

func (a *app) storageProvider(ctx context.Context) (storage.StorageProvider, error) {
	cfg := a.cfg.Storage
	switch cfg.Provider {
	case "aws":
		return storage.NewAWSS3Storage(ctx, storage.S3Config{
			BucketConfig: storage.BucketConfig{Bucket: cfg.AWS.Bucket, Prefix: cfg.KeyPrefix, CDNDomain: cfg.AWS.CDNDomain},
			Region:       cfg.AWS.Region,
		})
	case "gcp":
		return storage.NewGCPStorage(ctx, storage.GCSConfig{
			BucketConfig:    storage.BucketConfig{Bucket: cfg.GCP.Bucket, Prefix: cfg.KeyPrefix, CDNDomain: cfg.GCP.CDNDomain},
			CredentialsFile: cfg.GCP.CredentialsFile,
		})
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, a.localUploadsURL())
	}
}

func (a *app) localUploadsURL() string {
	return path.Join(a.cfg.App.BaseName, a.cfg.Storage.Local.BaseURL)
}

func (a *app) notifier(ctx context.Context) (services.NotificationService, error) {
	var smsProvider sms.SMSProvider
	switch a.cfg.SMS.Provider {
	case "twilio":
		smsProvider = sms.NewTwilioProvider(a.cfg.SMS.Twilio.AccountSID, a.cfg.SMS.Twilio.AuthToken, a.cfg.SMS.Twilio.FromNumber)
	case "aws":
		provider, err := sms.NewAWSSNSProvider(ctx, a.cfg.SMS.AWS.Region)
		if err != nil {
			return nil, err
		}
		smsProvider = provider
	}

	var pushProvider push.PushProvider
	if a.cfg.Push.Enabled() {
		provider, err := push.NewFCMProvider(ctx, a.cfg.Push.FCM.ProjectID, a.cfg.Push.FCM.CredentialsFile)
		if err != nil {
			return nil, err
		}
		pushProvider = provider
	}

	ws := a.cfg.WebSocket
	a.hub = websocket.NewHub(websocket.Options{
		ReadBufferSize:  ws.ReadBufferSize,
		WriteBufferSize: ws.WriteBufferSize,
		WriteWait:       ws.WriteTimeout,
		PongWait:        ws.PongTimeout,
		PingPeriod:      ws.PingInterval,
		MaxMessageSize:  ws.MaxMessageSize,
		AllowedOrigins:  ws.AllowedOrigins,
	}, a.logger.WithField("component", "staff_feed"))

	staffTopic := ""
	if a.cfg.Push.FCM != nil {
		staffTopic = a.cfg.Push.FCM.StaffTopic
	}

	return services.NewNotificationService(smsProvider, pushProvider, a.hub, services.NotificationConfig{
		SenderID:   a.cfg.SMS.SenderID,
		StaffTopic: staffTopic,
	}, a.logger), nil
}

func (a *app) geocoder() (maps.Geocoder, error) {
	if a.cfg.Maps.GoogleMaps == nil || a.cfg.Maps.GoogleMaps.APIKey == "" {
		return nil, nil
	}
	provider, err := maps.NewGoogleMapsProvider(a.cfg.Maps.GoogleMaps.APIKey)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func (a *app) healthChecks() map[string]api.HealthCheck {
	checks := map[string]api.HealthCheck{
		"store": a.store.Ping,
	}
	if a.redis != nil {
		checks["cache"] = a.redis.Ping
	}
	return checks
}

func (a *app) router() (*gin.Engine, error) {
	cfg := a.cfg
	base := cfg.App.BaseName

	pageHandler, err := pages.NewPageHandler(a.catalog, a.bookings, a.customization, a.showroom, base, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	if !cfg.Security.AdminEnabled() {
		a.logger.Warn("Staff endpoints are disabled; set ADMIN_USERNAME, ADMIN_PASSWORD and JWT_SECRET to enable them")
	}

	var limiter middleware.WindowCounter
	if a.redis != nil {
		limiter = a.redis
	}

	router, err := routes.NewRouter(routes.Handlers{
		Pages:      pageHandler,
		Catalog:    api.NewCatalogHandler(a.catalog, a.logger),
		Submission: api.NewSubmissionHandler(a.bookings, a.customization, a.logger),
		Staff:      api.NewStaffHandler(a.staff, a.bookings, a.customization, a.hub, a.logger),
		Health:     api.NewHealthHandler(cfg.App.Version, a.healthChecks()),
	}, routes.Options{
		BasePath:           base,
		JWTSecret:          cfg.Security.JWTSecret,
		CORSAllowedOrigins: cfg.Security.CORSAllowedOrigins,
		TrustedProxies:     cfg.Security.TrustedProxies,
		MaxUploadSize:      cfg.Storage.MaxUploadSize,
		SubmissionsPerHour: cfg.Security.SubmissionsPerHour,
		RateLimiter:        limiter,
		Logger:             a.logger,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Provider == "local" {
		router.Static(a.localUploadsURL(), cfg.Storage.Local.BasePath)
	}

	return router, nil
}

// Close releases the store and cache connections.
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.store != nil {
		if err := a.store.Close(ctx); err != nil {
			a.logger.WithError(err).Warn("Failed to close record store")
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.WithError(err).Warn("Failed to close redis")
		}
	}
}
