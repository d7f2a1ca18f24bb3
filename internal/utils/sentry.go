package utils

import (
	"log"
	"os"

	"github.com/getsentry/sentry-go"
)

// InitSentry initializes Sentry for error tracking. Without a DSN the SDK
// runs disabled, which is the intended local-development behavior.
func InitSentry() {
	dsn := os.Getenv("SENTRY_DSN")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	if dsn == "" {
		log.Println("Sentry initialized without DSN (disabled)")
	} else {
		log.Println("Sentry initialized with DSN from environment")
	}
}
