package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// concurrencyGuard is the threshold above which fetch requires explicit
// confirmation. A policy check at the CLI edge; the pipeline itself accepts
// any positive concurrency.
const concurrencyGuard = 20

func newFetchCmd() *cobra.Command {
	var (
		engine    string
		refetch   bool
		reprocess bool
		dryRun    bool
		urls      []string
		files     []string
		limit     int
		method    string
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [identifier]",
		Short: "Fetch document content and store it as markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, discoveryMethod, err := resolveFetchSource(args, urls, files, method)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			if a.cfg.Fetch.Concurrency > concurrencyGuard && !yes {
				return fmt.Errorf("configured concurrency %d exceeds %d; pass --yes to confirm",
					a.cfg.Fetch.Concurrency, concurrencyGuard)
			}

			if dryRun {
				return dryRunFetch(cmd, a, source, discoveryMethod, limit)
			}

			return runWorkflow(cmd.Context(), a, "fetch", map[string]any{
				"source":              source,
				"method":              discoveryMethod,
				"limit":               limit,
				"engine":              engine,
				"refetch":             refetch,
				"reprocess_unchanged": reprocess,
			})
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "Fetch engine (trafilatura, httpx, firecrawl, tavily)")
	cmd.Flags().BoolVar(&refetch, "refetch", false, "Fetch even when content is already indexed")
	cmd.Flags().BoolVar(&reprocess, "reprocess-unchanged", false, "Re-run downstream processing on unchanged content")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be fetched without fetching")
	cmd.Flags().StringSliceVar(&urls, "urls", nil, "Explicit URLs to fetch")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Explicit file paths to fetch")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of documents")
	cmd.Flags().StringVar(&method, "method", "", "Discovery method for the identifier")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm high-concurrency fetches")
	return cmd
}

func resolveFetchSource(args, urls, files []string, method string) (string, string, error) {
	explicit := append(append([]string{}, urls...), files...)
	switch {
	case len(explicit) > 0 && len(args) > 0:
		return "", "", fmt.Errorf("--urls/--files conflict with a positional identifier")
	case len(explicit) > 0:
		return strings.Join(explicit, ","), "manual", nil
	case len(args) == 1:
		if method == "" {
			method = "sitemap"
		}
		return args[0], method, nil
	default:
		return "", "", fmt.Errorf("an identifier, --urls, or --files is required")
	}
}

// dryRunFetch discovers and lists candidate documents without running the
// fetch step.
func dryRunFetch(cmd *cobra.Command, a *app, source, method string, limit int) error {
	run, err := a.runtime.RunSync(cmd.Context(), "map", map[string]any{
		"source": source,
		"method": method,
		"limit":  limit,
	}, submitOptions("map"))
	if err != nil {
		return &exitError{code: exitInternal, err: err}
	}
	printSummary(cmd.Context(), a, run)
	fmt.Println("\nDry run: no content fetched.")
	return nil
}
