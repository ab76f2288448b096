package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage print projects",
		Long:    "List, create, archive, activate and delete Lulu print projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())
	cmd.AddCommand(newProjectStatusCommand("archive", "Archive a project", lulu.ProjectsClient.Archive))
	cmd.AddCommand(newProjectStatusCommand("activate", "Activate a project", lulu.ProjectsClient.Activate))

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		status   string
		page     int
		size     int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List projects, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseStatusFlag(status, lulu.ParseProjectStatus)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				if allPages {
					projects, err := client.Projects().ListAll(ctx, filter)
					if err != nil {
						return fmt.Errorf("failed to list projects: %w", err)
					}

					return render(cmd.OutOrStdout(), projects, renderProjectTable)
				}

				opts := &lulu.ProjectListOptions{ListOptions: lulu.ListOptions{Page: page, Size: size}, Status: filter}

				projects, err := client.Projects().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list projects: %w", err)
				}

				return render(cmd.OutOrStdout(), projects, func(out io.Writer, data *lulu.PagedResponse[lulu.Project]) error {
					err := renderProjectTable(out, data.Items)
					if err == nil && len(data.Items) > 0 {
						renderPageFooter(out, data)
					}

					return err
				})
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, active, archived, completed)")
	addPagingFlags(cmd, &page, &size)
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				project, err := client.Projects().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get project: %w", err)
				}

				return render(cmd.OutOrStdout(), project, renderProjectDetails)
			})
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var title, description, author string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long:  "Create a new draft project",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &lulu.CreateProjectRequest{Title: title}

			if description != "" {
				request.Description = lulu.Ptr(description)
			}

			if author != "" {
				request.Author = lulu.Ptr(author)
			}

			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				project, err := client.Projects().Create(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to create project: %w", err)
				}

				return render(cmd.OutOrStdout(), project, renderProjectDetails)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&author, "author", "", "project author")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				deleted, err := client.Projects().Delete(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete project: %w", err)
				}

				result := map[string]interface{}{"project_id": args[0], "deleted": deleted}

				return render(cmd.OutOrStdout(), result, func(out io.Writer, _ map[string]interface{}) error {
					_, err := fmt.Fprintf(out, "Deleted project %s\n", args[0])

					return err
				})
			})
		},
	}
}

type projectStatusFunc func(lulu.ProjectsClient, context.Context, string) (*lulu.Project, error)

func newProjectStatusCommand(use, short string, change projectStatusFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PROJECT_ID",
		Short: short,
		Long:  short + " by updating its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client lulu.Client) error {
				project, err := change(client.Projects(), ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to %s project: %w", use, err)
				}

				return render(cmd.OutOrStdout(), project, renderProjectDetails)
			})
		},
	}
}

func renderProjectTable(out io.Writer, projects []lulu.Project) error {
	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, []string{project.ID, project.Title, text(project.Status), optional(project.Author), date(project.UpdatedAt)})
	}

	return renderRows(out, "No projects found", []string{"ID", "Title", "Status", "Author", "Updated"}, rows)
}

func renderProjectDetails(out io.Writer, project *lulu.Project) error {
	return renderProperties(out, [][2]string{
		{"ID", project.ID},
		{"Title", project.Title},
		{"Description", optional(project.Description)},
		{"Status", text(project.Status)},
		{"Author", optional(project.Author)},
		{"Created", date(project.CreatedAt)},
		{"Updated", date(project.UpdatedAt)},
	})
}

// parseStatusFlag turns a --status value into an enum filter; empty means none.
func parseStatusFlag[T ~string](value string, parse func(string) (T, error)) (*T, error) {
	if value == "" {
		return nil, nil
	}

	status, err := parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidStatus, err)
	}

	return &status, nil
}

func addPagingFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", constants.DefaultPage, "page number, starting at 0")
	cmd.Flags().IntVar(size, "size", constants.DefaultPageSize, "results per page")
}
