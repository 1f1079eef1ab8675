package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"portfolio-admin/internal/panel/manager"
	"portfolio-admin/internal/panel/sections"

	"github.com/spf13/cobra"
)

func (c *cli) sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the panel sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			for _, e := range p.Shell.Entries() {
				fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Title)
			}
			return w.Flush()
		},
	}
}

func (c *cli) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <section>",
		Short: "Load a section and print its contents",
		Long: `Load a section and print its contents as JSON. Unknown section
names open the dashboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			entry, err := p.Shell.Open(ctx, args[0])
			if err != nil {
				return c.finish(err)
			}
			fmt.Fprintf(c.out, "# %s\n", entry.Title)
			return printJSON(c.out, entry.Section.Snapshot())
		},
	}
}

// editable loads the manager behind a content section.
func (c *cli) editable(cmd *cobra.Command, id string) (*sections.Panel, sections.Editable, error) {
	p, err := c.panel()
	if err != nil {
		return nil, nil, err
	}
	e, ok := p.Editable(id)
	if !ok {
		return nil, nil, fmt.Errorf("%q is not an editable section", id)
	}

	ctx, cancel := c.context(cmd)
	defer cancel()
	if err := e.LoadAll(ctx); err != nil {
		return nil, nil, err
	}
	return p, e, nil
}

// attachImage uploads path for the open draft of section.
func attachImage(ctx context.Context, p *sections.Panel, section, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := p.UploadImage(ctx, section, filepath.Base(path), f); err != nil {
		if errors.Is(err, sections.ErrNoImage) {
			return fmt.Errorf("%s records have no image", section)
		}
		return err
	}
	return nil
}

func applyFields(e sections.Editable, sets []string) error {
	fields, err := parseAssignments(sets)
	if err != nil {
		return err
	}
	for k, v := range fields {
		if err := e.UpdateDraftField(k, v); err != nil {
			if errors.Is(err, manager.ErrUnknownField) {
				return fmt.Errorf("unknown field %q", k)
			}
			return err
		}
	}
	return nil
}

func (c *cli) createCmd() *cobra.Command {
	var (
		sets  []string
		image string
	)

	cmd := &cobra.Command{
		Use:   "create <section>",
		Short: "Create a record",
		Example: `  portfolioctl create skills --set name=Go --set level=90
  portfolioctl create products --set title=Notes --set description="A notes app" --set features="Sync, Export" --image shot.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, e, err := c.editable(cmd, args[0])
			if err != nil {
				return c.finish(err)
			}
			if _, err := e.BeginCreate(); err != nil {
				return err
			}
			if err := applyFields(e, sets); err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := attachImage(ctx, p, args[0], image); err != nil {
				return c.finish(err)
			}
			return c.finish(e.Save(ctx))
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field assignment key=value (repeatable)")
	cmd.Flags().StringVar(&image, "image", "", "Upload this file as the record image (products)")
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var (
		sets  []string
		image string
	)

	cmd := &cobra.Command{
		Use:     "edit <section> <id>",
		Short:   "Change fields of a record",
		Example: `  portfolioctl edit experience 6f1c... --set achievements="Led team\nShipped v2"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, e, err := c.editable(cmd, args[0])
			if err != nil {
				return c.finish(err)
			}
			if _, err := e.BeginEditID(args[1]); err != nil {
				if errors.Is(err, manager.ErrNotFound) {
					return fmt.Errorf("no %s with id %s", e.Config().Label, args[1])
				}
				return err
			}
			if err := applyFields(e, sets); err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := attachImage(ctx, p, args[0], image); err != nil {
				return c.finish(err)
			}
			return c.finish(e.Save(ctx))
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field assignment key=value (repeatable)")
	cmd.Flags().StringVar(&image, "image", "", "Upload this file as the record image (products)")
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <section> <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, err := c.editable(cmd, args[0])
			if err != nil {
				return c.finish(err)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			err = e.Delete(ctx, args[1])
			if errors.Is(err, manager.ErrNotFound) {
				return fmt.Errorf("no %s with id %s", e.Config().Label, args[1])
			}
			return c.finish(err)
		},
	}
	cmd.Flags().BoolVarP(&c.assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
