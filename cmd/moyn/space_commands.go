package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/logging"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

func newSpacesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "List all spaces you own or are a member of",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			spaces, err := client.ListSpaces(requestContext(cmd))
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, spaces)
			}

			out := cmd.OutOrStdout()
			if len(spaces) == 0 {
				fmt.Fprintln(out, "No spaces yet. Create one with `moyn space create --name <name>`")
				return nil
			}
			fmt.Fprintln(out, renderSpacesTable(spaces))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderSpacesTable(spaces []api.Space) string {
	rows := make([][]string, 0, len(spaces))
	for _, space := range spaces {
		rows = append(rows, []string{
			space.Slug,
			space.Name,
			visibilityLabel(space.Visibility),
			space.URL,
		})
	}
	return renderTable([]tableColumn{
		{header: "SLUG", maxWidth: 20},
		{header: "NAME", maxWidth: 30},
		{header: "VISIBILITY"},
		{header: "URL"},
	}, rows)
}

func newSpaceCommand(ctx *commandContext) *cobra.Command {
	spaceCmd := &cobra.Command{
		Use:   "space",
		Short: "Manage spaces",
	}
	spaceCmd.AddCommand(newSpaceCreateCommand(ctx))
	spaceCmd.AddCommand(newSpaceShowCommand(ctx))
	return spaceCmd
}

func newSpaceCreateCommand(ctx *commandContext) *cobra.Command {
	var req api.SpaceRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			space, err := client.CreateSpace(requestContext(cmd), req)
			if err != nil {
				return err
			}
			ctx.loggerValue().Info("space created",
				logging.String("slug", space.Slug),
				logging.String("visibility", space.Visibility),
			)
			if jsonOutput {
				return writeJSON(cmd, space)
			}

			out := cmd.OutOrStdout()
			printStatus(out, statusOK, "Created space", space.Name)
			fmt.Fprintf(out, "URL: %s\n", space.URL)
			if space.TokenURL != "" {
				fmt.Fprintf(out, "Share URL: %s\n", space.TokenURL)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Publish to this space:")
			fmt.Fprintf(out, "%sAdd `space: %s` to your markdown frontmatter\n", statusIndent, space.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&req.Slug, "slug", "s", "", "Custom slug (derived from the name when omitted)")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Space description")
	cmd.Flags().StringVar(&req.Visibility, "visibility", string(api.VisibilityPrivate),
		"Visibility: "+strings.Join(api.ValidVisibilities, ", "))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSpaceShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show details of a specific space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			space, err := client.ShowSpace(requestContext(cmd), args[0])
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					return newCommandError(err, "Space '%s' not found or you don't have access.", args[0])
				}
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, space)
			}
			printSpace(cmd.OutOrStdout(), space)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printSpace(out io.Writer, space api.Space) {
	fmt.Fprintf(out, "Space: %s\n", space.Name)
	detailLine(out, "Slug", space.Slug)
	detailLine(out, "Visibility", visibilityLabel(space.Visibility))
	detailLine(out, "Description", space.Description)
	detailLine(out, "URL", space.URL)
	detailLine(out, "Share URL", space.TokenURL)
	detailLine(out, "Access Token", space.AccessToken)
}
