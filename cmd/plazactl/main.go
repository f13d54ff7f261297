// plazactl is a debugging companion for the Plaza signing scheme. It signs
// request descriptors and classifies failed responses from the command
// line, so integration problems can be diagnosed without a running client.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	plaza "github.com/mitchell-amasia/bol.com-plaza-api-clients"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/apierr"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/signer"
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "plazactl",
		Short:   "Sign and classify Plaza marketplace API exchanges",
		Version: plaza.Version,
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(classifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func signCmd() *cobra.Command {
	var (
		method      string
		path        string
		contentType string
		bodyFile    string
		publicKey   string
		privateKey  string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the canonical string and signed headers for a request",
		Long: `Sign a request descriptor and print the canonical string plus the exact
header set a client would attach. The canonical string reveals enough to
attempt signature verification, so treat the output as sensitive.`,
		Example: `  plazactl sign --method GET --path /services/rest/orders/v1/open/
  plazactl sign --method POST --path /services/rest/shipments/v1 --content-type application/xml --body shipment.xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if publicKey == "" {
				publicKey = os.Getenv(credentials.EnvPublicKey)
			}
			if privateKey == "" {
				privateKey = os.Getenv(credentials.EnvPrivateKey)
			}

			cred, err := credentials.New(publicKey, privateKey)
			if err != nil {
				return err
			}

			var body []byte
			if bodyFile != "" {
				body, err = os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("read body file: %w", err)
				}
			}

			result, err := signer.NewDefaultSigner().Prepare(signer.RequestDescriptor{
				Method:      signer.Method(strings.ToUpper(method)),
				Path:        path,
				ContentType: contentType,
				Body:        body,
			}, cred)
			if err != nil {
				return err
			}

			fmt.Println("Canonical string:")
			fmt.Printf("  %q\n", result.CanonicalString)
			fmt.Println("Headers:")
			names := make([]string, 0, len(result.Headers))
			for name := range result.Headers {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s: %s\n", name, result.Headers[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "GET", "HTTP method (GET, POST, PUT, DELETE)")
	cmd.Flags().StringVarP(&path, "path", "p", "", "request path including query string")
	cmd.Flags().StringVarP(&contentType, "content-type", "t", "", "content type of the body")
	cmd.Flags().StringVarP(&bodyFile, "body", "b", "", "file holding the request body")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "account public key (default $PLAZA_PUBLIC_KEY)")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "account private key (default $PLAZA_PRIVATE_KEY)")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func classifyCmd() *cobra.Command {
	var (
		status      int
		bodyFile    string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a failed response by status and optional body",
		Example: `  plazactl classify --status 429
  plazactl classify --status 400 --body error.xml --content-type application/xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			if bodyFile != "" {
				var err error
				body, err = os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("read body file: %w", err)
				}
			}

			classified := apierr.Classify(status, body, contentType)

			fmt.Printf("Category:  %s\n", classified.Category)
			fmt.Printf("Status:    %d\n", classified.Status)
			fmt.Printf("Retryable: %v\n", classified.Retryable())
			if classified.Code != "" {
				fmt.Printf("Code:      %s\n", classified.Code)
			}
			if classified.Message != "" {
				fmt.Printf("Message:   %s\n", classified.Message)
			}
			for _, v := range classified.Violations {
				fmt.Printf("Violation: %s: %s\n", v.Field, v.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&status, "status", "s", 0, "HTTP status code")
	cmd.Flags().StringVarP(&bodyFile, "body", "b", "", "file holding the response body")
	cmd.Flags().StringVarP(&contentType, "content-type", "t", "", "content type of the response body")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
