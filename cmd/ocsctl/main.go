package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/opencommercesearch/opencommercesearch/client"
	"github.com/opencommercesearch/opencommercesearch/client/internal/logger"
	"github.com/opencommercesearch/opencommercesearch/client/optional"
	"github.com/opencommercesearch/opencommercesearch/client/request"
	"github.com/opencommercesearch/opencommercesearch/client/summary"
)

var serviceURL string
var debug bool
var logJSON bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ocsctl",
		Short:         "Build and debug product-search API requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logJSON {
				log.Logger = logger.New(cmd.ErrOrStderr(), "ocsctl")
			} else {
				log.Logger = logger.NewConsole(cmd.ErrOrStderr(), "ocsctl")
			}
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("OCS_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := os.Getenv("OCS_BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:9000"
	}
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the search API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs to stderr as JSON")

	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newSearchCmd())

	return rootCmd
}

func newURLCmd() *cobra.Command {
	var endpoint, site string
	var params, headers, fields, metadata []string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the request a set of parameters renders to",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.NewBase(endpoint)
			for _, kv := range params {
				name, value, err := splitPair(kv)
				if err != nil {
					return err
				}
				req.Add(name, value)
			}
			for _, f := range fields {
				req.AddField(f)
			}
			for _, f := range metadata {
				req.AddMetadataField(f)
			}
			if site != "" {
				req.SetSite(site)
			}
			for _, kv := range headers {
				name, value, err := splitPair(kv)
				if err != nil {
					return err
				}
				req.SetHeader(name, value)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, serviceURL+req.String())
			req.EachHeader(func(name, value string) {
				_, _ = fmt.Fprintf(out, "%s: %s\n", name, value)
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", request.ProductsEndpoint, "Endpoint path")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Query parameter name=value; repeated names are comma joined")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "Header parameter name=value")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "Field to return")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "Metadata field to return")
	cmd.Flags().StringVar(&site, "site", "", "Site code")
	return cmd
}

// summaryReport is the printable form of a summary.
type summaryReport struct {
	MinListPrice       optional.Option[float64]                   `json:"minListPrice"`
	MaxListPrice       optional.Option[float64]                   `json:"maxListPrice"`
	MinSalePrice       optional.Option[float64]                   `json:"minSalePrice"`
	MaxSalePrice       optional.Option[float64]                   `json:"maxSalePrice"`
	MinDiscountPercent optional.Option[float64]                   `json:"minDiscountPercent"`
	MaxDiscountPercent optional.Option[float64]                   `json:"maxDiscountPercent"`
	ColorFamilies      optional.Option[[]string]                  `json:"colorFamilies"`
	ColorCount         optional.Option[int]                       `json:"colorCount"`
	Buckets            map[string]optional.Option[map[string]int] `json:"buckets,omitempty"`
}

func newSummaryReport(s summary.Summary, bucketFields []string) summaryReport {
	r := summaryReport{
		MinListPrice:       s.MinListPrice(),
		MaxListPrice:       s.MaxListPrice(),
		MinSalePrice:       s.MinSalePrice(),
		MaxSalePrice:       s.MaxSalePrice(),
		MinDiscountPercent: s.MinDiscountPercent(),
		MaxDiscountPercent: s.MaxDiscountPercent(),
		ColorFamilies:      s.ColorFamilies(),
		ColorCount:         s.ColorCount(),
	}
	if len(bucketFields) > 0 {
		r.Buckets = make(map[string]optional.Option[map[string]int], len(bucketFields))
		for _, f := range bucketFields {
			r.Buckets[f] = s.Buckets(f)
		}
	}
	return r
}

func newSummaryCmd() *cobra.Command {
	var file string
	var buckets []string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the statistics of a product summary JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if file == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read summary: %w", err)
			}
			log.Debug().Str("file", file).Int("bytes", len(raw)).Msg("summary loaded")
			return printJSON(cmd.OutOrStdout(), newSummaryReport(summary.ParseBytes(raw), buckets))
		},
	}
	cmd.Flags().StringVar(&file, "file", "-", "Summary JSON file, - for stdin")
	cmd.Flags().StringSliceVar(&buckets, "buckets", nil, "Fields whose buckets to print")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var query, site string
	var fields, filters, buckets []string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a product search and print products with their summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []client.Option{}
			if site != "" {
				opts = append(opts, client.WithSite(site))
			}
			c, err := client.New(serviceURL, opts...)
			if err != nil {
				return err
			}

			req := request.NewSearchRequest(query)
			for _, f := range fields {
				req.AddField(f)
			}
			for _, fq := range filters {
				req.AddFilterQuery(fq)
			}
			req.AddMetadataField("found")
			req.AddMetadataField("productSummary")

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			start := time.Now()
			resp, err := c.Search(ctx, req)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Stack().Err(err).Str("request", req.String()).Dur("elapsed", elapsed).Msg("search failed")
				return err
			}
			log.Debug().Int("found", resp.Metadata.Found).Dur("elapsed", elapsed).Msg("search completed")

			type productOut struct {
				ID      string        `json:"id"`
				Title   string        `json:"title,omitempty"`
				Summary summaryReport `json:"summary"`
			}
			out := struct {
				Found    int          `json:"found"`
				Products []productOut `json:"products"`
			}{Found: resp.Metadata.Found, Products: []productOut{}}
			for _, p := range resp.Products {
				out.Products = append(out.Products, productOut{
					ID:      p.ID,
					Title:   p.Title,
					Summary: newSummaryReport(resp.Summary(p.ID), buckets),
				})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&query, "q", "q", "", "Search text")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "Field to return")
	cmd.Flags().StringArrayVar(&filters, "fq", nil, "Filter query, e.g. brand:Nike")
	cmd.Flags().StringSliceVar(&buckets, "buckets", nil, "Summary fields whose buckets to print")
	cmd.Flags().StringVar(&site, "site", "", "Site code")
	_ = cmd.MarkFlagRequired("q")
	return cmd
}

func splitPair(kv string) (string, string, error) {
	name, value, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("expected name=value, got %q", kv)
	}
	return name, value, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
