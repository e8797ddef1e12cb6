package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vk/bishin/internal/app"
)

// newRunCommand builds the `run` subcommand: load config, discover tests,
// generate scripts, and print the derived job list.
func newRunCommand(outW, logW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the tests",
		Long:  "Discover the test tree, generate one script per test, and print the derived jobs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, outW, logW)
		},
	}
	cmd.Flags().StringP("config-file", "f", "",
		"The path to the config file (default is '$PWD/bishin.toml').")
	return cmd
}

func runRun(cmd *cobra.Command, outW, logW io.Writer) error {
	logFormat, logLevel, err := logFlags(cmd)
	if err != nil {
		return err
	}
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return usageError(err)
	}

	appConfig, err := app.NewConfig(app.Config{
		ConfigFile: configFile,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	bishinApp, err := app.NewApp(outW, logW, appConfig)
	if err != nil {
		return err
	}

	jobs, err := bishinApp.Run(cmd.Context())
	if err != nil {
		return err
	}

	name := color.New(color.FgGreen).SprintFunc()
	for _, j := range jobs {
		fmt.Fprintf(outW, "%s\t%s\n", name(j.Name), strings.Join(j.Args, " "))
	}
	fmt.Fprintf(outW, "generated %d job(s)\n", len(jobs))
	return nil
}
