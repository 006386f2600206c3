package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/query"
	"github.com/itzMRZ/usisportal/internal/ui/render"
)

func (c *CLI) newCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses <semester-id>",
		Short: "List a semester's courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			semesterID := args[0]
			filterText, _ := cmd.Flags().GetString("filter")
			sortKey, _ := cmd.Flags().GetString("sort")
			dirText, _ := cmd.Flags().GetString("dir")
			page, _ := cmd.Flags().GetInt("page")
			allPages, _ := cmd.Flags().GetBool("all-pages")
			hints, _ := cmd.Flags().GetBool("hints")

			dir := query.Direction(dirText)
			if dir != query.Ascending && dir != query.Descending {
				return zerr.With(domain.ErrUnknownSortDirection, "dir", dirText)
			}

			// Hints compare against every other semester, so they need the
			// rest of the catalog in memory first. Individual preload
			// failures only shrink the hint pool.
			if hints {
				_, _ = c.app.LoadAll(cmd.Context())
			}

			if _, err := c.app.SelectSemester(cmd.Context(), semesterID); err != nil {
				return err
			}

			if filterText != "" {
				c.app.Filter(filterText)
			}
			if sortKey != "" {
				c.app.Sort(sortKey, dir)
			}

			var rows []domain.Course
			if allPages {
				rows = c.app.Filtered()
			} else {
				if page > 0 {
					if err := c.app.SetPage(page); err != nil {
						return err
					}
				}
				rows = c.app.CurrentPage()
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, render.CourseTable(rows))

			if hints {
				for _, course := range rows {
					if course.Faculty != domain.TBA {
						continue
					}
					result := c.app.MatchesFor(course)
					if result.Empty() {
						continue
					}
					_, _ = fmt.Fprintf(out, "%s %s:\n%s", course.Code, course.Section, render.MatchHints(result))
				}
			}

			if !allPages {
				_, _ = fmt.Fprintln(out, render.PaginationLine(c.app.PaginationInfo()))
			}
			if prov, ok := c.app.Provenance(semesterID); ok {
				_, _ = fmt.Fprintln(out, render.ProvenanceLine(semesterID, prov))
			}
			return nil
		},
	}

	cmd.Flags().StringP("filter", "f", "", "Keep only courses matching the text (code, section, faculty or schedule)")
	cmd.Flags().StringP("sort", "s", "", "Sort by column key (code, section, faculty, available, ...)")
	cmd.Flags().StringP("dir", "d", string(query.Ascending), "Sort direction: asc or desc")
	cmd.Flags().IntP("page", "p", 0, "Jump to the given page")
	cmd.Flags().Bool("all-pages", false, "Print the whole filtered dataset instead of one page")
	cmd.Flags().Bool("hints", false, "Preload all semesters and show instructor hints for TBA sections")

	return cmd
}
