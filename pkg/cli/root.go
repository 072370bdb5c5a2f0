package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// Version information - set by goreleaser via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// exitState collects the exit code computed by whichever handler ran.
// Handlers report their own failures, so cobra only ever sees nil or an
// InvalidCommand fault.
type exitState struct {
	code int
}

// Main parses args, dispatches to exactly one command, and returns the
// process exit code.
func Main(args []string) int {
	root, state := newRoot()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if faults.IsKind(err, faults.InvalidCommand) {
			// Routing contract violation; not a runtime condition.
			panic(err)
		}
		// Flag or argument parse errors from cobra.
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return state.code
}

func newRoot() (*cobra.Command, *exitState) {
	inv := &Invocation{}
	reg := NewRegistry()
	state := &exitState{}

	root := &cobra.Command{
		Use:           "maestro",
		Short:         "Validate, run and deploy agent workflows",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&inv.Verbose, "verbose", false, "echo full diagnostic trace on failure")
	root.PersistentFlags().BoolVar(&inv.Silent, "silent", false, "suppress success confirmations")
	root.PersistentFlags().BoolVar(&inv.DryRun, "dry-run", false, "skip side-effecting actions")

	dispatch := func(kind Kind) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			b, err := reg.Resolve(kind)
			if err != nil {
				return err
			}

			run := inv.RunConfig()
			if run.Verbose {
				logx.SetDebug(true)
			}
			if err := run.Export(); err != nil {
				return err
			}

			ctx := config.WithRun(cmd.Context(), run)
			state.code = Execute(ctx, b(inv))
			return nil
		}
	}

	validate := &cobra.Command{
		Use:   "validate [SCHEMA_FILE] YAML_FILE",
		Short: "Validate a configuration file against its schema",
		Args:  cobra.RangeArgs(1, 2),
		PreRun: func(_ *cobra.Command, args []string) {
			if len(args) == 2 {
				inv.SchemaFile, inv.YamlFile = args[0], args[1]
			} else {
				inv.YamlFile = args[0]
			}
		},
		RunE: dispatch(KindValidate),
	}

	create := &cobra.Command{
		Use:   "create AGENTS_FILE",
		Short: "Register the agents defined in a configuration file",
		Args:  cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, args []string) {
			inv.AgentsFile = args[0]
		},
		RunE: dispatch(KindCreate),
	}

	runCmd := &cobra.Command{
		Use:   "run AGENTS_FILE WORKFLOW_FILE",
		Short: "Run a workflow",
		Args:  cobra.ExactArgs(2),
		PreRun: func(_ *cobra.Command, args []string) {
			inv.AgentsFile, inv.WorkflowFile = args[0], args[1]
		},
		RunE: dispatch(KindRun),
	}
	runCmd.Flags().BoolVar(&inv.Prompt, "prompt", false, "read the workflow prompt from the operator")

	deployCmd := &cobra.Command{
		Use:   "deploy AGENTS_FILE WORKFLOW_FILE [ENV...]",
		Short: "Deploy a workflow to a backend",
		Args:  cobra.MinimumNArgs(2),
		PreRun: func(_ *cobra.Command, args []string) {
			inv.AgentsFile, inv.WorkflowFile = args[0], args[1]
			inv.Env = args[2:]
		},
		RunE: dispatch(KindDeploy),
	}
	deployCmd.Flags().BoolVar(&inv.Deploy.Docker, "docker", false, "deploy to the containerized runtime")
	deployCmd.Flags().BoolVar(&inv.Deploy.K8s, "k8s", false, "deploy to kubernetes")
	deployCmd.Flags().BoolVar(&inv.Deploy.Kubernetes, "kubernetes", false, "deploy to kubernetes")
	deployCmd.Flags().BoolVar(&inv.Deploy.Streamlit, "streamlit", false, "serve the interactive UI (the default)")
	deployCmd.Flags().BoolVar(&inv.Deploy.AutoPrompt, "auto-prompt", false, "run the configured prompt automatically")
	deployCmd.Flags().StringVar(&inv.Deploy.URL, "url", "", "deploy endpoint (default 127.0.0.1:5000)")

	mermaid := &cobra.Command{
		Use:   "mermaid WORKFLOW_FILE",
		Short: "Render a workflow as mermaid text",
		Args:  cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, args []string) {
			inv.WorkflowFile = args[0]
		},
		RunE: dispatch(KindMermaid),
	}
	mermaid.Flags().BoolVar(&inv.SequenceDiagram, "sequenceDiagram", false, "sequence diagram notation (the default)")
	mermaid.Flags().BoolVar(&inv.FlowchartTD, "flowchart-td", false, "flowchart, top-down")
	mermaid.Flags().BoolVar(&inv.FlowchartLR, "flowchart-lr", false, "flowchart, left-right")
	mermaid.MarkFlagsMutuallyExclusive("sequenceDiagram", "flowchart-td", "flowchart-lr")

	metaAgents := &cobra.Command{
		Use:   "meta-agents TEXT_FILE",
		Short: "Generate agents from a text description",
		Args:  cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, args []string) {
			inv.TextFile = args[0]
		},
		RunE: dispatch(KindMetaAgents),
	}

	clean := &cobra.Command{
		Use:   "clean",
		Short: "Terminate UI processes started by this tool",
		Args:  cobra.NoArgs,
		RunE:  dispatch(KindClean),
	}

	root.AddCommand(validate, create, runCmd, deployCmd, mermaid, metaAgents, clean)
	return root, state
}
