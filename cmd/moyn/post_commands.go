package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

func newPostsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List your posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			posts, err := client.ListPosts(requestContext(cmd))
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, posts)
			}

			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				fmt.Fprintln(out, "No posts yet.")
				return nil
			}
			fmt.Fprintln(out, renderPostsTable(posts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderPostsTable(posts []api.PostSummary) string {
	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, []string{
			strconv.FormatUint(post.ID, 10),
			post.Title,
			post.URL,
		})
	}
	return renderTable([]tableColumn{
		{header: "ID", align: alignRight},
		{header: "TITLE", maxWidth: 40},
		{header: "URL"},
	}, rows)
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := client.DeletePost(requestContext(cmd), id); err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return newCommandError(err, "post %d not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post %d deleted.\n", id)
			return nil
		},
	}
}

func parsePostID(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "delete", "", fmt.Sprintf("invalid post id %q", value), nil)
	}
	return id, nil
}
