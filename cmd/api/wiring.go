package main

import (
	"context"
	"fmt"

	"gamecatalog/internal/adapter/repository"
	domainrepo "gamecatalog/internal/domain/repository"
	"gamecatalog/internal/domain/service"
	"gamecatalog/internal/infrastructure/awsclient"
	"gamecatalog/internal/infrastructure/firestoredb"
	"gamecatalog/internal/infrastructure/mail"
	"gamecatalog/internal/infrastructure/mongodb"
	"gamecatalog/internal/infrastructure/storage"
	"gamecatalog/pkg/config"
	"gamecatalog/pkg/logger"
)

type store struct {
	games       domainrepo.GameRepository
	ads         domainrepo.AdRepository
	users       domainrepo.UserRepository
	subscribers domainrepo.SubscriberRepository
	pinger      domainrepo.Pinger
	close       func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := client.CreateIndexes(ctx); err != nil {
			client.Close(ctx)
			return nil, err
		}
		logger.Info("Connected to MongoDB database %s", cfg.MongoDatabase)
		return &store{
			games:       repository.NewMongoGameRepository(client.Games()),
			ads:         repository.NewMongoAdRepository(client.Ads()),
			users:       repository.NewMongoUserRepository(client.Users()),
			subscribers: repository.NewMongoSubscriberRepository(client.Subscribers()),
			pinger:      client,
			close:       client.Close,
		}, nil

	case config.DriverFirestore:
		client, err := firestoredb.NewClient(ctx, cfg.FirebaseProject)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to Firestore project %s", cfg.FirebaseProject)
		return &store{
			games:       repository.NewFirestoreGameRepository(client),
			ads:         repository.NewFirestoreAdRepository(client),
			users:       repository.NewFirestoreUserRepository(client),
			subscribers: repository.NewFirestoreSubscriberRepository(client),
			pinger:      firestoredb.Pinger{Client: client},
			close:       func(context.Context) error { return client.Close() },
		}, nil

	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return &store{
			games:       repository.NewMemoryGameRepository(),
			ads:         repository.NewMemoryAdRepository(),
			users:       repository.NewMemoryUserRepository(),
			subscribers: repository.NewMemorySubscriberRepository(),
			pinger:      repository.NewMemoryPinger(),
			close:       func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}

func newMailer(ctx context.Context, cfg *config.Config) (service.Mailer, error) {
	switch cfg.MailProvider {
	case "ses":
		awsCfg, err := awsclient.LoadConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return mail.NewSESMailer(awsCfg, cfg.SESFrom)
	case "log":
		return mail.NewLogMailer(), nil
	case "smtp":
		if cfg.SMTPHost == "" {
			logger.Warn("SMTP_HOST not set; new-game notifications are only logged")
			return mail.NewLogMailer(), nil
		}
		return mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		})
	}
	return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
}

func newMediaUploader(ctx context.Context, cfg *config.Config) (service.MediaUploader, func() error, error) {
	noop := func() error { return nil }

	switch cfg.MediaProvider {
	case "gcs":
		client, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, firestoredb.CredentialOptions()...)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	case "s3":
		awsCfg, err := awsclient.LoadConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, nil, err
		}
		client, err := storage.NewS3Client(awsCfg, cfg.S3Bucket, cfg.MediaPublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return client, noop, nil
	case "none":
		logger.Warn("MEDIA_PROVIDER=none; uploads are disabled")
		return storage.DisabledUploader{}, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown MEDIA_PROVIDER %q", cfg.MediaProvider)
}
