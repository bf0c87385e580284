package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmallard/storefront/internal/auth"
	"github.com/jmallard/storefront/internal/catalog"
	"github.com/jmallard/storefront/internal/config"
	"github.com/jmallard/storefront/internal/events"
	"github.com/jmallard/storefront/internal/kvstore"
	"github.com/jmallard/storefront/internal/logging"
	"github.com/jmallard/storefront/internal/notify"
	"github.com/jmallard/storefront/internal/store"
)

// app wires one command invocation: config, logger, substrate, core.
type app struct {
	Cfg     *config.Config
	Log     *slog.Logger
	Store   *store.OrderStore
	Catalog *catalog.Client
	Auth    *auth.Service

	kv       *kvstore.GormStore
	producer *events.Producer
}

// printNotifier is the toast analog: success lines to stdout, refusals
// to stderr.
type printNotifier struct{}

func (printNotifier) Success(msg string) { fmt.Println(msg) }
func (printNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	kv, err := kvstore.Open(ctx, cfg.StorePath, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	notifiers := notify.Multi{printNotifier{}, &notify.LogNotifier{Log: log}}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		notifiers = append(notifiers, &events.Notifier{Producer: producer, Log: log})
	}

	return &app{
		Cfg:      cfg,
		Log:      log,
		Store:    store.New(ctx, kv, notifiers, log),
		Catalog:  catalog.NewClient(cfg.CatalogURL),
		Auth:     &auth.Service{KV: kv, Log: log},
		kv:       kv,
		producer: producer,
	}, nil
}

func (a *app) Close() {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.Log.Error("producer close error", "error", err)
		}
	}
	if err := a.kv.Close(); err != nil {
		a.Log.Error("store close error", "error", err)
	}
}
