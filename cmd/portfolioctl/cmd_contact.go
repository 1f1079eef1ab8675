package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"portfolio-admin/internal/panel/sections"

	"github.com/spf13/cobra"
)

func (c *cli) contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Work through contact submissions",
		Long: `Submissions move from new to read to replied. They never go
back to new.`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: c.withInbox(func(ctx context.Context, inbox *sections.Inbox, args []string) error {
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tFROM\tSUBJECT\tSUBMITTED")
			for _, s := range inbox.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s <%s>\t%s\t%s\n",
					s.ID, s.Status, s.Name, s.Email, s.Subject, s.SubmittedAt.Format("2006-01-02 15:04"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%d unread\n", inbox.Unread())
			return nil
		}),
	}

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a submission as read",
		Args:  cobra.ExactArgs(1),
		RunE: c.withInbox(func(ctx context.Context, inbox *sections.Inbox, args []string) error {
			return inbox.MarkRead(ctx, args[0])
		}),
	}

	replied := &cobra.Command{
		Use:   "replied <id>",
		Short: "Mark a read submission as replied",
		Args:  cobra.ExactArgs(1),
		RunE: c.withInbox(func(ctx context.Context, inbox *sections.Inbox, args []string) error {
			return inbox.MarkReplied(ctx, args[0])
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a submission after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: c.withInbox(func(ctx context.Context, inbox *sections.Inbox, args []string) error {
			return inbox.Delete(ctx, args[0])
		}),
	}
	del.Flags().BoolVarP(&c.assumeYes, "yes", "y", false, "Do not ask for confirmation")

	cmd.AddCommand(list, read, replied, del)
	return cmd
}

func (c *cli) withInbox(fn func(context.Context, *sections.Inbox, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := c.panel()
		if err != nil {
			return c.finish(err)
		}

		ctx, cancel := c.context(cmd)
		defer cancel()

		if err := p.Inbox.LoadAll(ctx); err != nil {
			return c.finish(err)
		}
		return c.finish(fn(ctx, p.Inbox, args))
	}
}
