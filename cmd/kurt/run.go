package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// submitOptions tags a run with its workflow type for API-side filtering.
func submitOptions(workflowType string) workflow.SubmitOptions {
	return workflow.SubmitOptions{
		Metadata: map[string]any{"workflow_type": workflowType},
	}
}

// runWorkflow executes a workflow synchronously, prints the terminal
// summary, and converts the outcome to an exit code.
func runWorkflow(ctx context.Context, a *app, name string, inputs map[string]any) error {
	run, err := a.runtime.RunSync(ctx, name, inputs, submitOptions(name))
	if err != nil {
		return &exitError{code: exitInternal, err: err}
	}

	printSummary(ctx, a, run)

	switch string(run.Status) {
	case workflow.StatusCompleted:
		return nil
	case workflow.StatusCanceled:
		return &exitError{code: exitCanceled}
	case workflow.StatusCompletedWithErrors, workflow.StatusFailed:
		return &exitError{code: exitStepFail}
	default:
		return &exitError{code: exitInternal}
	}
}

// printSummary renders the per-step outcome table the CLI shows after a
// synchronous run.
func printSummary(ctx context.Context, a *app, run *ent.WorkflowRun) {
	logs, err := a.db.StepLog.Query().
		Where(steplog.RunID(run.ID)).
		Order(steplog.ByStartedAt()).
		All(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load step summary: %v\n", err)
		return
	}

	fmt.Printf("\nWorkflow %s: %s\n", run.ID, workflow.DisplayStatus(string(run.Status)))
	if run.ErrorMessage != nil && *run.ErrorMessage != "" {
		fmt.Printf("Error: %s\n", *run.ErrorMessage)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSTATUS\tIN\tOUT\tERRORS")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", l.StepID, l.Status, l.InputCount, l.OutputCount, l.ErrorCount)
	}
	w.Flush()

	for _, l := range logs {
		for _, e := range l.Errors {
			fmt.Printf("  %s: [%v] %v: %v\n", l.StepID, e["kind"], e["item_id"], e["message"])
		}
	}
}
