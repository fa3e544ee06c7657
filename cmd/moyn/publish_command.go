package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/document"
	"github.com/moyn-dev/moyn-cli/internal/logging"
)

type dryRunPost struct {
	File        string   `json:"file"`
	Title       string   `json:"title"`
	TitleSource string   `json:"title_source"`
	Published   bool     `json:"published"`
	Slug        string   `json:"slug,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Space       string   `json:"space,omitempty"`
	BodyBytes   int      `json:"body_bytes"`
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Publish a markdown file as a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			doc, err := document.LoadFile(path)
			if err != nil {
				return err
			}
			post := postFromDocument(doc)

			if dryRun {
				return printDryRun(cmd, path, doc, post, jsonOutput)
			}

			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			summary, err := client.Publish(requestContext(cmd), post)
			if err != nil {
				return err
			}
			ctx.loggerValue().Info("post published",
				logging.Uint64("post_id", summary.ID),
				logging.String("title_source", string(doc.TitleSource)),
				logging.String("space", post.Space),
			)

			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			printStatus(out, statusOK, "Published", summary.Title)
			fmt.Fprintf(out, "URL: %s\n", summary.URL)
			fmt.Fprintf(out, "ID: %d\n", summary.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the post that would be published without sending it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func postFromDocument(doc *document.Document) api.Post {
	slug, _ := doc.Slug()
	space, _ := doc.Space()
	return api.Post{
		Title:     doc.Title,
		Content:   doc.Body,
		Published: doc.Published(),
		Slug:      slug,
		Tags:      doc.Tags(),
		Space:     space,
	}
}

func printDryRun(cmd *cobra.Command, path string, doc *document.Document, post api.Post, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, dryRunPost{
			File:        path,
			Title:       post.Title,
			TitleSource: string(doc.TitleSource),
			Published:   post.Published,
			Slug:        post.Slug,
			Tags:        post.Tags,
			Space:       post.Space,
			BodyBytes:   len(post.Content),
		})
	}

	out := cmd.OutOrStdout()
	printStatus(out, statusInfo, "Dry run", path)
	detailLine(out, "Title", fmt.Sprintf("%s (from %s)", post.Title, doc.TitleSource))
	detailLine(out, "Published", yesNo(post.Published))
	detailLine(out, "Slug", post.Slug)
	detailLine(out, "Tags", strings.Join(post.Tags, ", "))
	detailLine(out, "Space", post.Space)
	detailLine(out, "Body", strconv.Itoa(len(post.Content))+" bytes")
	return nil
}
