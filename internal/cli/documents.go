package cli

import (
	"fmt"
	"io"
	"time"

	"docadmin/internal/model"
	"docadmin/pkg/pagination"

	"github.com/spf13/cobra"
)

func newDocumentsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Inspect project documents",
	}
	cmd.AddCommand(
		newDocumentsListCmd(opts),
		newDocumentsGetCmd(opts),
		newDocumentsCreateCmd(opts),
	)
	return cmd
}

type documentJSON struct {
	ID         string    `json:"id"`
	Key        string    `json:"key"`
	Snapshot   string    `json:"snapshot,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	AccessedAt time.Time `json:"accessedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type documentPageJSON struct {
	Documents   []documentJSON `json:"documents"`
	HasPrevious bool           `json:"hasPrevious"`
	HasNext     bool           `json:"hasNext"`
}

func toDocumentJSON(d model.DocumentSummary) documentJSON {
	return documentJSON{
		ID:         d.ID,
		Key:        d.Key,
		Snapshot:   d.Snapshot,
		CreatedAt:  d.CreatedAt,
		AccessedAt: d.AccessedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func newDocumentsListCmd(opts *globalOptions) *cobra.Command {
	var (
		after  string
		before string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list <project>",
		Short: "List one page of a project's documents",
		Long: `List one page of a project's documents, ordered by id.

Without --after or --before the first page is shown. The ids printed under the table
can be passed back to move to the previous or next page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cursor *pagination.Cursor
			switch {
			case after != "":
				cursor = pagination.After(after)
			case before != "":
				cursor = pagination.Before(before)
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			page, err := client.FetchPage(cmd.Context(), args[0], cursor)
			if err != nil {
				return fmt.Errorf("list documents: %w", err)
			}

			if asJSON {
				out := documentPageJSON{
					Documents:   make([]documentJSON, 0, page.Len()),
					HasPrevious: page.HasPrevious,
					HasNext:     page.HasNext,
				}
				for _, d := range page.Items {
					out.Documents = append(out.Documents, toDocumentJSON(d))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return renderPage(cmd.OutOrStdout(), page)
		},
	}

	cmd.Flags().StringVar(&after, "after", "", "show the page after this document id")
	cmd.Flags().StringVar(&before, "before", "", "show the page before this document id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive("after", "before")
	return cmd
}

func renderPage(w io.Writer, page pagination.Page[model.DocumentSummary]) error {
	if page.Len() == 0 {
		_, err := fmt.Fprintln(w, "No documents.")
		return err
	}

	t := newTable(w, "KEY", "ID", "CREATED", "UPDATED")
	for _, d := range page.Items {
		t.addRow(d.Key, d.ID, formatDate(d.CreatedAt), formatDate(d.UpdatedAt))
	}
	if err := t.render(); err != nil {
		return err
	}

	prev := "previous: " + yesNo(page.HasPrevious)
	if first, ok := page.First(); ok && page.HasPrevious {
		prev += " (--before " + first.ID + ")"
	}
	next := "next: " + yesNo(page.HasNext)
	if last, ok := page.Last(); ok && page.HasNext {
		next += " (--after " + last.ID + ")"
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", prev, next)
	return err
}

func newDocumentsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <project> <key>",
		Short: "Show a document by key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			d, err := client.GetDocument(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("get document: %w", err)
			}
			return renderDocument(cmd.OutOrStdout(), d)
		},
	}
}

func newDocumentsCreateCmd(opts *globalOptions) *cobra.Command {
	var snapshot string

	cmd := &cobra.Command{
		Use:   "create <project> <key>",
		Short: "Create a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			d, err := client.CreateDocument(cmd.Context(), args[0], args[1], snapshot)
			if err != nil {
				return fmt.Errorf("create document: %w", err)
			}
			return renderDocument(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "initial document snapshot")
	return cmd
}

func renderDocument(w io.Writer, d model.DocumentSummary) error {
	t := newTable(w, "FIELD", "VALUE")
	t.addRow("key", d.Key)
	t.addRow("id", d.ID)
	t.addRow("created", formatDate(d.CreatedAt))
	t.addRow("accessed", formatDate(d.AccessedAt))
	t.addRow("updated", formatDate(d.UpdatedAt))
	t.addRow("snapshot", orDash(d.Snapshot))
	return t.render()
}
