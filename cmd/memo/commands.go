package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ferdiebergado/memoboard/internal/board"
	"github.com/ferdiebergado/memoboard/internal/client"
	"github.com/ferdiebergado/memoboard/internal/pkg/logging"
	timex "github.com/ferdiebergado/memoboard/internal/pkg/time"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL  string
	timeout  time.Duration
	timezone string
	logLevel string

	now func() time.Time
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:           "memo",
		Short:         "Manage reminders stored in the memo API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Setup(os.Getenv("ENV"), opts.logLevel, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "url", envOr("MEMO_API_URL", client.DefaultBaseURL), "base URL of the memo API")
	flags.DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "timeout of each API call")
	flags.StringVar(&opts.timezone, "timezone", "Local", "time zone used to decide what today is")
	flags.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "error"), "log level")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newToggleCmd(opts),
		newDeleteCmd(opts),
	)

	return root
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List memos grouped by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.client()
			return refresh(cmd.Context(), cmd, c)
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := board.ValidateFormTitle(args[0]); err != nil {
				return err
			}

			loc, err := timex.LoadLocation(opts.timezone)
			if err != nil {
				return err
			}

			if err := board.ValidateFormDate(date, opts.now(), loc); err != nil {
				return err
			}

			c := opts.client()
			if _, err := c.CreateMemo(cmd.Context(), client.CreateInput{Title: args[0], CreatedAt: date}); err != nil {
				return fmt.Errorf("create memo: %w", err)
			}

			return refresh(cmd.Context(), cmd, c)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "creation date in dd/mm/aaaa, today when empty")

	return cmd
}

func newToggleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Switch a memo between pendente and completado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			c := opts.client()
			m, err := c.GetMemo(cmd.Context(), memoID)
			if err != nil {
				return fmt.Errorf("get memo: %w", err)
			}

			in := client.UpdateInput{Title: m.Title, Status: board.Toggle(m.Status)}
			if _, err := c.UpdateMemo(cmd.Context(), memoID, in); err != nil {
				return fmt.Errorf("update memo: %w", err)
			}

			return refresh(cmd.Context(), cmd, c)
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memoID, err := parseID(args[0])
			if err != nil {
				return err
			}

			c := opts.client()
			if err := c.DeleteMemo(cmd.Context(), memoID); err != nil {
				return fmt.Errorf("delete memo: %w", err)
			}

			return refresh(cmd.Context(), cmd, c)
		},
	}
}

func (o *options) client() *client.Client {
	return client.New(
		client.WithBaseURL(o.baseURL),
		client.WithHTTPClient(&http.Client{Timeout: o.timeout}),
	)
}

func refresh(ctx context.Context, cmd *cobra.Command, c *client.Client) error {
	memos, err := c.GetAllMemos(ctx)
	if err != nil {
		return err
	}
	return board.Render(cmd.OutOrStdout(), memos)
}

func parseID(s string) (int, error) {
	memoID, err := strconv.Atoi(s)
	if err != nil || memoID <= 0 {
		return 0, fmt.Errorf("invalid memo id %q", s)
	}
	return memoID, nil
}

func envOr(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
