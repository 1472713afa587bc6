package commands

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/penwyp/go-oat-search/internal/core/constants"
	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/core/oat"
	"github.com/penwyp/go-oat-search/internal/presentation/formatter"
	"github.com/penwyp/go-oat-search/internal/util"
	"github.com/spf13/cobra"
)

// Output modes
const (
	OutputRaw     = "raw"
	OutputTable   = "table"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

type rootOptions struct {
	// Credential
	apiToken string

	// Endpoint
	baseURL string

	// Output related
	outputFormat string
	timezone     string

	// Logging related
	debug   bool
	logFile string
}

// nowFunc is replaced in tests to pin the query window
var nowFunc = time.Now

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "go-oat-search -t <token> [flags]",
		Short: "Query Vision One for observed attack technique detections",
		Long: `go-oat-search fetches Observed Attack Technique (OAT) detections from the
Trend Vision One API for the last 30 days and prints the result.

Only detections from the ptn and pts product codes are requested, at every risk
level. A single page of up to 100 detections is retrieved.

Examples:
  go-oat-search -t "$TOKEN"                      # Print status, headers and the JSON body
  go-oat-search -t - < token.txt                 # Read the token from stdin
  go-oat-search -t "$TOKEN" -o table             # Render detections as a table
  go-oat-search -t "$TOKEN" -o csv > oat.csv     # Export detections as CSV
  go-oat-search -t "$TOKEN" -o summary           # Count detections by risk and source`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.apiToken, "APIToken", "t", "",
		"Vision One API token (use - to read it from stdin)")
	_ = cmd.MarkFlagRequired("APIToken")

	cmd.Flags().StringVar(&opts.baseURL, "base-url", constants.DefaultBaseURL,
		"API base URL")

	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", OutputRaw,
		"Output format (raw, table, csv, summary)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC",
		"Timezone for detection times in table and csv output (e.g., UTC, Local, Asia/Tokyo)")

	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"Write debug logs to stderr")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "",
		"Append JSON logs to this file")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *rootOptions) error {
	switch opts.outputFormat {
	case OutputRaw, OutputTable, OutputCSV, OutputSummary:
	default:
		return fmt.Errorf("invalid output format %q (expected raw, table, csv or summary)", opts.outputFormat)
	}
	if err := util.InitializeTimeProvider(opts.timezone); err != nil {
		return err
	}

	token, err := resolveToken(opts.apiToken, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Arguments are valid from here on; later failures are not usage errors
	cmd.SilenceUsage = true

	logLevel := "info"
	if opts.debug {
		logLevel = "debug"
	}
	if err := util.InitLogger(logLevel, opts.logFile, opts.debug); err != nil {
		return err
	}
	defer util.CloseLogger()

	window, spec := oat.BuildRequest(opts.baseURL, token, nowFunc())
	util.LogInfo("Querying OAT detections",
		util.Field{Key: "start", Value: oat.FormatTimestamp(window.Start)},
		util.Field{Key: "end", Value: oat.FormatTimestamp(window.End)},
		util.Field{Key: "token", Value: util.MaskSecret(token)},
	)

	client := oat.NewClient()
	resp, err := client.Fetch(cmd.Context(), spec)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		util.LogWarnf("API returned status %d", resp.StatusCode)
	}

	return render(cmd.OutOrStdout(), resp, opts.outputFormat)
}

// render writes resp in the requested mode. Detection modes fall back to the
// raw rendering unless the response is a 200 JSON detection list.
func render(w io.Writer, resp *oat.Response, output string) error {
	if output != OutputRaw {
		if list, ok := decodeDetections(resp); ok {
			tp := util.GetTimeProvider()
			switch output {
			case OutputTable:
				return formatter.NewTableFormatter(w, tp).Format(list)
			case OutputCSV:
				return formatter.NewCSVFormatter(w, tp).Format(list)
			case OutputSummary:
				return formatter.NewSummaryFormatter(w).Format(list)
			}
		}
		util.LogDebugf("Response is not a detection list, using %s output", OutputRaw)
	}
	return formatter.NewResponseFormatter(w).Format(resp)
}

func decodeDetections(resp *oat.Response) (model.DetectionList, bool) {
	var list model.DetectionList
	if resp.StatusCode != http.StatusOK || !resp.IsJSONContent() {
		return list, false
	}
	if err := resp.Decode(&list); err != nil {
		util.LogDebugf("Failed to decode detection list: %v", err)
		return list, false
	}
	return list, list.Items != nil
}

func Execute() error {
	return rootCmd.Execute()
}
