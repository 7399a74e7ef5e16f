package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	var (
		urlSource    string
		folderSource string
		cmsSource    string
		method       string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "map [source]",
		Short: "Discover documents from a sitemap, crawl, folder, or CMS",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, discoveryMethod, err := resolveMapSource(args, urlSource, folderSource, cmsSource, method)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			return runWorkflow(cmd.Context(), a, "map", map[string]any{
				"source": source,
				"method": discoveryMethod,
				"limit":  limit,
			})
		},
	}

	cmd.Flags().StringVar(&urlSource, "url", "", "Discover from a site (sitemap, falling back to crawl)")
	cmd.Flags().StringVar(&folderSource, "folder", "", "Discover files under a local folder")
	cmd.Flags().StringVar(&cmsSource, "cms", "", "Discover CMS entries (platform:instance)")
	cmd.Flags().StringVar(&method, "method", "", "Discovery method override (sitemap, crawl, folder, cms)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of discovered documents")
	return cmd
}

// resolveMapSource turns the positional argument and mode flags into a
// (source, method) pair. Exactly one source may be given.
func resolveMapSource(args []string, urlSource, folderSource, cmsSource, method string) (string, string, error) {
	count := 0
	source := ""
	resolved := method

	if len(args) == 1 {
		count++
		source = args[0]
	}
	if urlSource != "" {
		count++
		source = urlSource
		if resolved == "" {
			resolved = "sitemap"
		}
	}
	if folderSource != "" {
		count++
		source = folderSource
		resolved = "folder"
	}
	if cmsSource != "" {
		count++
		source = cmsSource
		resolved = "cms"
	}

	if count == 0 {
		return "", "", fmt.Errorf("a source is required: positional, --url, --folder, or --cms")
	}
	if count > 1 {
		return "", "", fmt.Errorf("exactly one source may be given")
	}
	if resolved == "" {
		resolved = "sitemap"
	}
	return source, resolved, nil
}
