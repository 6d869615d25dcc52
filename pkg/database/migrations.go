package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vyronex/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsCollection = "migrations"

type Migration struct {
	Version     int
	Description string
	Up          func(ctx context.Context, db *mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
	logger     *logger.Logger
}

func NewMigrator(db *mongo.Database, log *logger.Logger) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
		logger:     log,
	}
}

// Up applies every migration newer than the recorded version, in order.
func (m *Migrator) Up(ctx context.Context) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}

		m.logger.WithField("version", migration.Version).Infof("Running migration: %s", migration.Description)

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if err := m.updateVersion(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}
	}

	return nil
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(ctx context.Context, version int) error {
	_, err := m.db.Collection(migrationsCollection).ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now().UTC()}},
		options.Replace().SetUpsert(true),
	)
	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Index car categories by slug",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection("carcategories").Indexes().CreateMany(ctx, []mongo.IndexModel{
					{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
					{Keys: bson.D{{Key: "isActive", Value: 1}}},
				})
				return err
			},
		},
		{
			Version:     2,
			Description: "Index premium cars by category and availability",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection("premiumcars").Indexes().CreateMany(ctx, []mongo.IndexModel{
					{Keys: bson.D{{Key: "category", Value: 1}, {Key: "availability", Value: 1}}},
					{Keys: bson.D{{Key: "_createdDate", Value: 1}}},
				})
				return err
			},
		},
		{
			Version:     3,
			Description: "Index lead collections by submission time",
			Up: func(ctx context.Context, db *mongo.Database) error {
				for _, name := range []string{"testdrivebookings", "customizationrequests"} {
					_, err := db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
						{Keys: bson.D{{Key: "_createdDate", Value: -1}}},
						{Keys: bson.D{{Key: "customerEmail", Value: 1}}},
					})
					if err != nil {
						return fmt.Errorf("failed to index %s: %w", name, err)
					}
				}
				return nil
			},
		},
	}
}
