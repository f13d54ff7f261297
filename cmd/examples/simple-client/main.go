// Copyright (C) 2025 Mitchell Amasia
//
// This file is part of plaza-api-clients.
//
// plaza-api-clients is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// plaza-api-clients is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with plaza-api-clients.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/apierr"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/client"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
)

func main() {
	fmt.Println("Plaza API - Simple Client Example")
	fmt.Println("=================================")

	// Load .env file if present (ignore error if missing).
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

	fmt.Printf("\n1. Fetching open orders as account %s...\n", c.PublicKey())

	ctx := context.Background()
	resp, err := c.Get(ctx, "/services/rest/orders/v1/open/")

	var classified *apierr.ClassifiedError
	switch {
	case err == nil:
		fmt.Printf("   Success (%d): %d bytes\n", resp.StatusCode, len(resp.Body))
	case errors.As(err, &classified):
		fmt.Printf("   Rejected: category=%s status=%d code=%s message=%q\n",
			classified.Category, classified.Status, classified.Code, classified.Message)
		for _, v := range classified.Violations {
			fmt.Printf("     field %s: %s\n", v.Field, v.Reason)
		}
	default:
		log.Fatalf("   Transport failure: %v", err)
	}
}
