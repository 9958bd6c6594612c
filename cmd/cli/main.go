package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	entriesURL       string
	consolidationURL string
	ssoURL           string
	token            string
	timeout          time.Duration
)

// bcryptGenerate is swappable in tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashflow-cli",
		Short: "Cashflow CLI tool",
		Long:  `A command line interface for interacting with the cashflow services.`,
	}

	rootCmd.PersistentFlags().StringVar(&entriesURL, "entries-url", "http://localhost:8080", "Base URL of the entries API")
	rootCmd.PersistentFlags().StringVar(&consolidationURL, "consolidation-url", "http://localhost:8081", "Base URL of the consolidation API")
	rootCmd.PersistentFlags().StringVar(&ssoURL, "sso-url", "http://localhost:8082", "Base URL of the SSO API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated requests")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(entryCmd())
	rootCmd.AddCommand(consolidationCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Authenticate and print a token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"email": args[0], "password": args[1]}
			result := postJSON(ssoURL+"/api/v1/auth/login", body)
			printJSON(result)
		},
	}
}

func entryCmd() *cobra.Command {
	entry := &cobra.Command{
		Use:   "entry",
		Short: "Entry operations",
	}

	var (
		date        string
		amount      string
		direction   string
		description string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a financial entry",
		Run: func(cmd *cobra.Command, args []string) {
			day, err := time.Parse(time.DateOnly, date)
			if err != nil {
				fmt.Printf("Invalid date (use YYYY-MM-DD): %v\n", err)
				os.Exit(1)
			}
			body := map[string]any{
				"date":        day.UTC().Format(time.RFC3339),
				"amount":      amount,
				"direction":   direction,
				"description": description,
			}
			result := postJSON(entriesURL+"/api/v1/entries", body)
			printJSON(result)
		},
	}
	create.Flags().StringVar(&date, "date", time.Now().UTC().Format(time.DateOnly), "Entry date (YYYY-MM-DD)")
	create.Flags().StringVar(&amount, "amount", "", "Entry amount")
	create.Flags().StringVar(&direction, "direction", "C", "Entry direction (C or D)")
	create.Flags().StringVar(&description, "description", "", "Entry description")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an entry by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON(entriesURL + "/api/v1/entries/" + args[0]))
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON(entriesURL + "/api/v1/entries"))
		},
	}

	entry.AddCommand(create, get, list)
	return entry
}

func consolidationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consolidation <date>",
		Short: "Get the daily consolidated balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON(consolidationURL + "/api/v1/consolidation/" + args[0]))
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password with bcrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func postJSON(url string, body any) map[string]any {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	return doRequest(req)
}

func getJSON(url string) map[string]any {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	return doRequest(req)
}

func doRequest(req *http.Request) map[string]any {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 500))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		// Collection endpoints return arrays.
		var list []any
		if err := json.Unmarshal(body, &list); err != nil {
			fmt.Printf("Failed to parse response: %v\n", err)
			os.Exit(1)
		}
		return map[string]any{"items": list}
	}

	return result
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
