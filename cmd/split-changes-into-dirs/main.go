// Command split-changes-into-dirs reports which subdirectories of one or more
// parent folders were touched by a commit range, for selective CI builds.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/novog93/split-changes-into-dirs/internal/action"
	"github.com/novog93/split-changes-into-dirs/internal/event"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		action.Fail("split-changes-into-dirs action failed: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split-changes-into-dirs",
		Short: "List the subdirectories touched by a commit range",
		Long: `split-changes-into-dirs groups the files changed by the triggering
pull request or push into directories below the configured parent
folders and writes them to the "directories" output as a JSON array.

Every flag mirrors an action input. Inputs are read from INPUT_* env vars
when running in GitHub Actions, from SCREAMING_SNAKE env vars or a .env
file locally, and flags take precedence over both.`,
		Example: `split-changes-into-dirs --baseFolders '[services, libs]' --depth 0 --source git`,
		Args:    cobra.NoArgs,
		RunE:    runAction,
	}
	cmd.SilenceUsage = true

	for _, name := range inputNames {
		cmd.Flags().String(name, "", fmt.Sprintf("overrides the %q input", name))
	}
	return cmd
}

func runAction(cmd *cobra.Command, _ []string) error {
	// Local runs only; a missing .env is fine.
	_ = godotenv.Load()

	in, err := LoadInputs(flagOrInput(cmd.Flags()))
	if err != nil {
		return err
	}

	loadEvent := func() (*event.Context, error) { return event.LoadContext(os.Getenv) }
	directories, err := Run(cmd.Context(), in, loadEvent, newLister)
	if err != nil {
		return err
	}

	out, err := json.Marshal(directories)
	if err != nil {
		return err
	}
	action.SetOutput("directories", string(out))
	return nil
}

// flagOrInput prefers an explicitly set flag over the action input.
func flagOrInput(flags *pflag.FlagSet) func(string) string {
	return func(name string) string {
		if f := flags.Lookup(name); f != nil && f.Changed {
			return f.Value.String()
		}
		return action.GetInput(name)
	}
}
