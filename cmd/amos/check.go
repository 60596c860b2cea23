package main

import (
	"fmt"
	"sync"

	"github.com/amos-org/amos/internal/catalogue"
	"github.com/amos-org/amos/pkg/analysis"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkJobs int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every catalogue model and report failures",
	Long:  "Load the base model and every catalogue model concurrently. Exits non-zero if any of them fails to load.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 4, "Number of models loaded at once")
}

type checkResult struct {
	path    string
	caption string
	err     error
}

func runCheck(cmd *cobra.Command, _ []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	paths := []string{env.Config.BaseModel}
	for _, item := range catalogue.DefaultItems() {
		paths = append(paths, item.ModelPath)
	}

	results := make([]checkResult, len(paths))
	var mu sync.Mutex

	// Load failures are collected, not returned, so every model is checked.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(checkJobs, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			model, err := env.Loader.LoadSync(ctx, path)
			res := checkResult{path: path, err: err}
			if err == nil {
				res.caption = analysis.Summarize(model).Caption()
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %-28s %v\n", res.path, res.err)
			continue
		}
		fmt.Fprintf(out, "ok   %-28s %s\n", res.path, res.caption)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d models failed to load", failed, len(results))
	}
	return nil
}
