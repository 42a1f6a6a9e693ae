package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sage/internal/domain/corpus"
	"github.com/kailas-cloud/sage/internal/domain/prompt"
	"github.com/kailas-cloud/sage/internal/domain/tone"
	logpkg "github.com/kailas-cloud/sage/internal/logger"
	chatuc "github.com/kailas-cloud/sage/internal/usecase/chat"
	searchuc "github.com/kailas-cloud/sage/internal/usecase/search"
)

type askOptions struct {
	tone     string
	limit    int
	explain  bool
	logLevel string
}

func newAskCommand() *cobra.Command {
	var opts askOptions
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Compose a reply locally without starting the server",
		Long: `Compose a reply to a question using the built-in corpus.

The question is taken from the arguments, or read from stdin when none are given.

Examples:
  sage ask "what did krishna say about duty"
  sage ask --tone poetic "how should I face pride"
  echo "what is virtue" | sage ask --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.tone, "tone", "t", string(tone.Neutral), "reply tone: "+toneList())
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", searchuc.DefaultLimit, "number of passages to quote")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print the score of every corpus entry")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the log level (stderr)")
	return cmd
}

func runAsk(cmd *cobra.Command, args []string, opts askOptions) error {
	raw := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 1<<20))
		if err != nil {
			return fmt.Errorf("read question: %w", err)
		}
		raw = string(data)
	}

	p, err := prompt.New(raw, prompt.DefaultMaxChars)
	if err != nil {
		return err
	}
	t, err := tone.Parse(opts.tone)
	if err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", opts.limit)
	}

	logger, err := logpkg.NewLogger("cli", opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctx := logpkg.ContextWithLogger(cmd.Context(), logger)

	selector := searchuc.New(corpus.Default())
	reply := chatuc.New(selector).WithLimit(opts.limit).Reply(ctx, p.String(), t)

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, reply.Text); err != nil {
		return err
	}
	if opts.explain {
		return writeRanking(out, selector.Rank(p.String()))
	}
	return nil
}

func writeRanking(w io.Writer, ranked []searchuc.Pick) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Score", "Source", "Tags"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	for _, p := range ranked {
		table.Append([]string{strconv.Itoa(p.Score), p.Entry.Source(), strings.Join(p.Entry.Tags(), ",")})
	}
	table.Render()
	return nil
}

func toneList() string {
	all := tone.All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
