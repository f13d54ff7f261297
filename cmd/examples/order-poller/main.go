package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/apierr"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/client"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
)

// Polls an offer export until the marketplace has finished generating it.
// Download endpoints answer 412 while the artifact is not ready yet; that
// is a "try again later", not a failure. Transient server errors and rate
// limits are retried with backoff.
func main() {
	fmt.Println("Plaza API - Offer Export Poller Example")
	fmt.Println("=======================================")

	_ = godotenv.Load()

	baseURL := os.Getenv("PLAZA_BASE_URL")
	if baseURL == "" {
		baseURL = "https://test-plazaapi.bol.com"
	}

	c, err := client.NewClient(
		baseURL,
		os.Getenv(credentials.EnvPublicKey),
		os.Getenv(credentials.EnvPrivateKey),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	path := "/offers/v2/export/offers.csv"

	for attempt := 1; ; attempt++ {
		fmt.Printf("\nAttempt %d: downloading %s...\n", attempt, path)

		resp, err := apierr.RetryWithBackoff(ctx, apierr.RetryConfig{
			MaxRetries: 3,
			BaseDelay:  time.Second,
			MaxDelay:   30 * time.Second,
		}, func() (*client.Response, error) {
			return c.Get(ctx, path)
		}, apierr.ShouldRetry)

		switch {
		case err == nil:
			fmt.Printf("Export ready: %d bytes\n", len(resp.Body))
			return
		case apierr.IsNotYetAvailable(err):
			fmt.Println("Export not generated yet, waiting...")
			select {
			case <-ctx.Done():
				log.Fatalf("Gave up waiting for export: %v", ctx.Err())
			case <-time.After(15 * time.Second):
			}
		default:
			log.Fatalf("Download failed: %v", err)
		}
	}
}
