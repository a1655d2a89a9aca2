package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sevigo/docsheet/internal/app"
	"github.com/sevigo/docsheet/internal/wire"
)

const summaryWidth = 100

var rootCmd = &cobra.Command{
	Use:   "docsheet",
	Short: "docsheet fills a documentation spreadsheet from a project's source tree.",
	Long: `docsheet scans the backend and frontend folders of a project, recognises
controllers, CQRS types, entities, repositories and Angular building blocks,
and appends one row per component to a spreadsheet template.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a docsheet.yaml config file")
	pf.String("root", "", "Project root to document")

	f := rootCmd.Flags()
	f.String("template", "", "Template workbook to fill")
	f.StringP("output", "o", "", "Path of the generated workbook")
	f.Bool("fallback-on-miss", false, "Retry files whose rule found no declaration with the generic rule")
	f.Bool("summary", false, "Print a summary of the documented components")

	bindFlag("config", pf.Lookup("config"))
	bindFlag("project.root", pf.Lookup("root"))
	bindFlag("template", f.Lookup("template"))
	bindFlag("output", f.Lookup("output"))
	bindFlag("classify.fallback_on_miss", f.Lookup("fallback-on-miss"))
	bindFlag("summary", f.Lookup("summary"))
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		slog.Error("Error binding flag", "flag", flag.Name, "error", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	res, err := a.Run(ctx)
	if err != nil {
		return err
	}

	if a.Config().Summary {
		return printSummary(a, res)
	}
	return nil
}

func printSummary(a *app.App, res *app.Result) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		_, err := fmt.Fprint(a.Output(), app.Summary(res))
		return err
	}
	out, err := app.RenderSummary(res, summaryWidth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.Output(), out)
	return err
}
