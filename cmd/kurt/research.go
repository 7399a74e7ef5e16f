package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurt-labs/kurt/pkg/research"
)

func newResearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research",
		Short: "Web research commands",
	}
	cmd.AddCommand(newResearchSearchCmd())
	return cmd
}

func newResearchSearchCmd() *cobra.Command {
	var (
		recency    string
		model      string
		save       bool
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the web and optionally summarize the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			client, err := research.New(a.cfg.Research, a.llm)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			resp, err := client.Search(cmd.Context(), query, research.Options{
				Recency:    recency,
				MaxResults: maxResults,
				Model:      model,
			})
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			printResearch(resp)

			if save {
				path, err := saveResearch(a.cfg.Paths.Sources, resp)
				if err != nil {
					return &exitError{code: exitInternal, err: err}
				}
				fmt.Printf("\nSaved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recency, "recency", "", "Restrict results by age (day, week, month, year)")
	cmd.Flags().StringVar(&model, "model", "", "Summarize results with this model")
	cmd.Flags().BoolVar(&save, "save", false, "Save the results into the content store")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Cap the number of results")
	return cmd
}

func printResearch(resp *research.Response) {
	if resp.Answer != "" {
		fmt.Println(resp.Answer)
		fmt.Println()
	}
	for i, r := range resp.Results {
		fmt.Printf("%d. %s\n   %s\n", i+1, r.Title, r.URL)
	}
}

// saveResearch writes the search results as a markdown note under the
// content store's research/ directory.
func saveResearch(root string, resp *research.Response) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Research: %s\n\n", resp.Query)
	if resp.Answer != "" {
		b.WriteString(resp.Answer)
		b.WriteString("\n\n")
	}
	b.WriteString("## Sources\n\n")
	for _, r := range resp.Results {
		fmt.Fprintf(&b, "- [%s](%s)\n", r.Title, r.URL)
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, resp.Query)
	if len(name) > 60 {
		name = name[:60]
	}

	dir := filepath.Join(root, "research")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", time.Now().Format("2006-01-02"), name))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
