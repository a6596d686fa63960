package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"hireboard/internal/integration/analytics"
)

func analyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Query analytics endpoints",
	}
	cmd.AddCommand(applicationsCmd())
	return cmd
}

// applications: print the applications-per-job metric, optionally narrowed with a JSONPath.
func applicationsCmd() *cobra.Command {
	var (
		baseURL string
		path    string
		token   string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Fetch applications per job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpClient := &http.Client{Timeout: timeout}
			if token != "" {
				httpClient.Transport = bearerTransport{token: token, next: http.DefaultTransport}
			}
			result, err := analytics.NewClient(baseURL, httpClient).GetApplicationsPerJob(cmd.Context())
			if err != nil {
				return err
			}
			if expr := strings.TrimSpace(path); expr != "" {
				result, err = jsonpath.Get(expr, result)
				if err != nil {
					return fmt.Errorf("jsonpath %s: %w", expr, err)
				}
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.Flags().StringVar(&path, "path", "", "JSONPath applied to the response (e.g. $[0].applications)")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for the API")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	return cmd
}

type bearerTransport struct {
	token string
	next  http.RoundTripper
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+b.token)
	return b.next.RoundTrip(clone)
}
