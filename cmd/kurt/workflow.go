package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kurt-labs/kurt/pkg/services"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

func newWorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run and inspect workflows",
	}
	cmd.AddCommand(
		newWorkflowRunCmd(),
		newWorkflowStatusCmd(),
		newWorkflowLogsCmd(),
		newWorkflowCancelCmd(),
		newWorkflowTestCmd(),
	)
	return cmd
}

func newWorkflowRunCmd() *cobra.Command {
	var inputFlags []string

	cmd := &cobra.Command{
		Use:   "run <path.toml>",
		Short: "Run a declarative workflow file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := workflow.LoadDefinition(args[0])
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			inputs, err := parseInputs(def, inputFlags)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			a.workflows.Register(def)
			return runWorkflow(cmd.Context(), a, def.Name, inputs)
		},
	}

	cmd.Flags().StringArrayVarP(&inputFlags, "input", "i", nil, "Workflow input as key=value (repeatable)")
	return cmd
}

func newWorkflowStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <workflow-id>",
		Short: "Show a workflow's live composite status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			svc := services.NewWorkflowService(a.db.Client)
			status, err := svc.LiveStatus(cmd.Context(), args[0])
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			fmt.Printf("Workflow %s (%s): %s\n", status.Workflow.WorkflowID,
				status.Workflow.WorkflowName, status.Workflow.Status)

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tSTATUS\tIN\tOUT\tERRORS")
			for _, s := range status.Steps {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", s.StepID, s.Status, s.InputCount, s.OutputCount, s.ErrorCount)
			}
			w.Flush()

			if len(status.Values) > 0 {
				fmt.Println()
				for k, v := range status.Values {
					fmt.Printf("%s: %v\n", k, v)
				}
			}
			return nil
		},
	}
}

func newWorkflowLogsCmd() *cobra.Command {
	var (
		stepID  string
		sinceID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "logs <workflow-id>",
		Short: "Show a workflow's step events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			events, err := a.eventService.ListEvents(cmd.Context(), args[0], stepID, sinceID, limit)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			for _, e := range events {
				line := fmt.Sprintf("%d  %s  [%s] %s", e.ID, e.CreatedAt.Format("15:04:05"), e.StepID, e.Status)
				if e.Message != "" {
					line += "  " + e.Message
				}
				if e.Current != nil && e.Total != nil {
					line += fmt.Sprintf("  (%d/%d)", *e.Current, *e.Total)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stepID, "step-id", "", "Only events for this step")
	cmd.Flags().IntVar(&sinceID, "since-id", 0, "Only events after this id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of events")
	return cmd
}

func newWorkflowCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <workflow-id>",
		Short: "Request cancellation of a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			if err := a.runtime.Cancel(cmd.Context(), args[0]); err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			fmt.Printf("Cancellation requested for %s\n", args[0])
			return nil
		},
	}
}

func newWorkflowTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <path.toml>",
		Short: "Validate a workflow file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := workflow.LoadDefinition(args[0])
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			a, err := newApp(cmd.Context(), configPath)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}
			defer a.Close()

			if err := def.Validate(a.registry); err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			dag, err := workflow.BuildDAG(def.Steps)
			if err != nil {
				return &exitError{code: exitInternal, err: err}
			}

			fmt.Printf("Workflow %q is valid: %d steps, %d levels\n",
				def.Name, len(def.Steps), len(dag.Levels))
			for i, level := range dag.Levels {
				fmt.Printf("  level %d: %s\n", i, strings.Join(level, ", "))
			}
			return nil
		},
	}
}

// parseInputs converts repeated -i key=value flags into typed workflow
// inputs using the definition's declarations.
func parseInputs(def *workflow.Definition, flags []string) (map[string]any, error) {
	inputs := make(map[string]any, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid input %q: expected key=value", f)
		}

		decl, declared := def.Inputs[key]
		if !declared {
			inputs[key] = value
			continue
		}
		switch decl.Type {
		case "int":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("input %q: %q is not an int", key, value)
			}
			inputs[key] = n
		case "float":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("input %q: %q is not a float", key, value)
			}
			inputs[key] = n
		case "bool":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("input %q: %q is not a bool", key, value)
			}
			inputs[key] = b
		default:
			inputs[key] = value
		}
	}
	return inputs, nil
}
