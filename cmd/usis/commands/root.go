// Package commands implements the CLI commands for the usis course browser.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/itzMRZ/usisportal/internal/build"
	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/loader"
	"github.com/itzMRZ/usisportal/internal/engine/match"
	"github.com/itzMRZ/usisportal/internal/engine/query"
)

// CLI represents the command line interface for usis.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigPath(path string)
	LoadAll(ctx context.Context) ([]loader.Outcome, error)
	SelectSemester(ctx context.Context, semesterID string) ([]domain.Course, error)
	Filter(text string)
	Sort(key string, dir query.Direction)
	CurrentPage() []domain.Course
	Filtered() []domain.Course
	PaginationInfo() query.Info
	SetPage(page int) error
	MatchesFor(course domain.Course) match.Result
	Provenance(semesterID string) (domain.Provenance, bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "usis",
		Short:         "Browse university course listings across semesters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configPath, _ := cmd.Flags().GetString("config")
			a.SetConfigPath(configPath)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Path to the semester catalog file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newCoursesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
