package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"portfolio-admin/internal/infra/storage"

	"github.com/spf13/cobra"
)

func (c *cli) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change site settings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List settings by group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := p.Settings.LoadAll(ctx); err != nil {
				return c.finish(err)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			for _, g := range p.Settings.Groups() {
				fmt.Fprintf(w, "[%s]\n", g.Title)
				for _, s := range g.Settings {
					fmt.Fprintf(w, "  %s\t%s\t%q\n", s.Key, s.ValueType, s.Value)
				}
			}
			return w.Flush()
		},
	}

	set := &cobra.Command{
		Use:     "set key=value...",
		Short:   "Change settings and save them all",
		Example: `  portfolioctl settings set site_title="Jane Doe" resume_download_enabled=false`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := parseAssignments(args)
			if err != nil {
				return err
			}

			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := p.Settings.LoadAll(ctx); err != nil {
				return c.finish(err)
			}
			for k, v := range changes {
				if err := p.Settings.Set(k, v); err != nil {
					return fmt.Errorf("%s: %w", k, err)
				}
			}
			return c.finish(p.Settings.SaveAll(ctx))
		},
	}

	var description string
	add := &cobra.Command{
		Use:   "add <key> <value>",
		Short: "Create a new setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			return c.finish(p.Settings.Create(ctx, args[0], args[1], description))
		},
	}
	add.Flags().StringVar(&description, "description", "", "What the setting controls")

	cmd.AddCommand(list, set, add)
	return cmd
}

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and change the owner profile",
	}

	var sets []string
	set := &cobra.Command{
		Use:     "set",
		Short:   "Change profile fields",
		Example: `  portfolioctl profile set --set name="Jane Doe" --set title="Engineer"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := p.Profile.LoadAll(ctx); err != nil {
				return c.finish(err)
			}
			return c.finish(p.Profile.Save(ctx, fields))
		},
	}
	set.Flags().StringArrayVar(&sets, "set", nil, "Field assignment key=value (repeatable)")

	avatar := &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE:  c.profileUpload(true),
	}
	resume := &cobra.Command{
		Use:   "resume <file>",
		Short: "Upload the downloadable resume",
		Args:  cobra.ExactArgs(1),
		RunE:  c.profileUpload(false),
	}

	cmd.AddCommand(set, avatar, resume)
	return cmd
}

func (c *cli) profileUpload(avatar bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		p, err := c.panel()
		if err != nil {
			return c.finish(err)
		}
		ctx, cancel := c.context(cmd)
		defer cancel()

		if err := p.Profile.LoadAll(ctx); err != nil {
			return c.finish(err)
		}

		name := filepath.Base(args[0])
		var url string
		if avatar {
			url, err = p.Profile.UploadAvatar(ctx, name, f)
		} else {
			url, err = p.Profile.UploadResume(ctx, name, f)
		}
		if err != nil {
			return c.finish(err)
		}
		fmt.Fprintln(c.out, url)
		return nil
	}
}

func (c *cli) uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <bucket> <file>",
		Short: "Upload a file and print its public URL",
		Long:  fmt.Sprintf("Upload a file to one of the buckets: %v.", storage.Buckets),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !storage.ValidBucket(args[0]) {
				return fmt.Errorf("unknown bucket %q", args[0])
			}
			if err := c.gate.Require(); err != nil {
				return c.finish(err)
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx, cancel := c.context(cmd)
			defer cancel()

			url, err := c.gate.Client().Upload(ctx, args[0], filepath.Base(args[1]), f)
			if err != nil {
				return c.finish(err)
			}
			fmt.Fprintln(c.out, url)
			return nil
		},
	}
}

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show record counts and the analytics overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.panel()
			if err != nil {
				return c.finish(err)
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := p.Summary.LoadAll(ctx); err != nil {
				return c.finish(err)
			}
			d := p.Summary.Dashboard()

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Skills\t%d\n", d.Counts.Skills)
			fmt.Fprintf(w, "Technologies\t%d\n", d.Counts.Technologies)
			fmt.Fprintf(w, "Products\t%d\n", d.Counts.Products)
			fmt.Fprintf(w, "Experience\t%d\n", d.Counts.Experience)
			if len(d.Counts.Failed) > 0 {
				fmt.Fprintf(w, "Unavailable\t%v\n", d.Counts.Failed)
			}
			if a := d.Analytics; a != nil {
				fmt.Fprintf(w, "Contact forms\t%d total, %d this month (%+.1f%%)\n",
					a.ContactForms.Total, a.ContactForms.ThisMonth, a.ContactForms.Growth)
				fmt.Fprintf(w, "Page views\t%d total\n", a.PageViews.Total)
				for _, act := range a.RecentActivity {
					fmt.Fprintf(w, "  %s\t%s\n", act.Timestamp.Local().Format("2006-01-02 15:04"), act.Action)
				}
			}
			fmt.Fprintf(w, "Refreshed\t%s\n", d.Counts.RefreshedAt.Format("15:04:05"))
			return w.Flush()
		},
	}
}
