// Command portfolioctl is a terminal front end for the portfolio admin API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"portfolio-admin/internal/logging"
	"portfolio-admin/internal/panel/recordstore"
	"portfolio-admin/internal/panel/sections"
	"portfolio-admin/internal/panel/session"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envConfig supplies flag defaults from the environment.
type envConfig struct {
	APIURL string `env:"PORTFOLIO_API_URL" env-default:"http://localhost:8080"`
	APIKey string `env:"PORTFOLIO_API_KEY"`
}

// cli holds what the commands share once flags are parsed.
type cli struct {
	apiURL    string
	apiKey    string
	tokenFile string
	verbose   bool
	timeout   time.Duration
	assumeYes bool

	in  *bufio.Reader
	out io.Writer

	log  *zap.Logger
	gate *session.Gate
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "portfolioctl", "token.json")
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var env envConfig
	_ = cleanenv.ReadEnv(&env)

	c := &cli{in: bufio.NewReader(in), out: out}

	root := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Manage portfolio content from the terminal",
		Long: `portfolioctl edits the content behind the public portfolio site:
profile, skills, technologies, certifications, products, projects,
experience, education, contact submissions and site settings.

Log in once with 'portfolioctl login'; the session is kept in a token file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if c.verbose {
				level = "debug"
			}
			log, err := logging.New(level, "console")
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.log = log

			client := recordstore.New(c.apiURL, c.apiKey, recordstore.WithLogger(log.Named("client")))
			c.gate, err = session.New(client, session.NewFileStore(c.tokenFile), session.WithLogger(log.Named("session")))
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", env.APIURL, "Admin API base URL (or set PORTFOLIO_API_URL)")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", env.APIKey, "Public API key (or set PORTFOLIO_API_KEY)")
	root.PersistentFlags().StringVar(&c.tokenFile, "token-file", defaultTokenFile(), "Where the session token is kept")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.sectionsCmd(),
		c.openCmd(),
		c.createCmd(),
		c.editCmd(),
		c.deleteCmd(),
		c.contactCmd(),
		c.settingsCmd(),
		c.profileCmd(),
		c.uploadCmd(),
		c.dashboardCmd(),
	)
	return root
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

// panel returns the wired panel, or ErrUnauthenticated when no session
// is held.
func (c *cli) panel() (*sections.Panel, error) {
	if err := c.gate.Require(); err != nil {
		return nil, err
	}
	return sections.New(c.gate.Client(), &notifier{out: c.out}, &confirmer{in: c.in, out: c.out, yes: c.assumeYes}, c.log.Named("panel")), nil
}

// finish maps a rejected session to a login hint.
func (c *cli) finish(err error) error {
	if err = c.gate.Check(err); errors.Is(err, session.ErrUnauthenticated) {
		return errors.New("not logged in; run 'portfolioctl login'")
	}
	return err
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
