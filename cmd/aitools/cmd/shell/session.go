package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/cmd/alerts"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
	"github.com/agentstation/aitools/internal/cmd/filter"
	"github.com/agentstation/aitools/internal/cmd/output"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
)

const helpText = `Commands:
  tools [category]   list tools, optionally in one category ("tools" alone clears it)
  categories         list categories
  search <text>      search name, category and description in the current category
  favs               list favorites
  add <id>...        add tools to favorites
  rm <id>...         remove tools from favorites
  stats [category]   count tools per category
  help               show this help
  quit               leave the shell`

// Session is one interactive browsing session. It holds a single client,
// so favorites persist for as long as the session runs.
type Session struct {
	client  aitools.Client
	printer *output.Printer
	alerts  alerts.Writer
	out     io.Writer
	logger  *zerolog.Logger

	// Prompt is printed before each line is read. Empty disables it.
	Prompt string

	category string
}

// NewSession creates a session writing results to out through printer and
// messages through alertWriter.
func NewSession(client aitools.Client, printer *output.Printer, alertWriter alerts.Writer, out io.Writer, logger *zerolog.Logger) *Session {
	return &Session{
		client:  client,
		printer: printer,
		alerts:  alertWriter,
		out:     out,
		logger:  logger,
	}
}

// Run loads the directory, then executes commands read from in until quit,
// end of input, or ctx ends.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if err := s.greet(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if s.Prompt != "" {
			fmt.Fprint(s.out, s.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := s.Exec(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// greet loads tools and favorites concurrently and prints a summary.
func (s *Session) greet(ctx context.Context) error {
	var tools, favs []catalogs.Tool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tools, err = s.client.Tools(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		favs, err = s.client.Favorites(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return s.alerts.WriteAlert(alerts.NewInfo(fmt.Sprintf(
		"%d tools in %d categories, %d favorites. Type \"help\" for commands.",
		len(tools), len(s.client.Categories()), len(favs))))
}

// Exec runs one command line. It reports whether the session should end.
// Command failures are reported as alerts; only cancellation and write
// failures are returned.
func (s *Session) Exec(ctx context.Context, line string) (bool, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	verb = strings.ToLower(verb)

	s.logger.Debug().Str("verb", verb).Str("args", rest).Msg("Shell command")

	var err error
	switch verb {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		_, err = fmt.Fprintln(s.out, helpText)
	case "tools", "ls":
		s.category = rest
		err = s.listTools(ctx, "")
	case "search", "find":
		err = s.listTools(ctx, rest)
	case "categories", "cats":
		err = s.printer.Categories(s.client.Categories())
	case "favs", "favorites":
		err = s.listFavorites(ctx)
	case "add":
		err = s.add(ctx, rest)
	case "rm", "remove":
		err = s.remove(ctx, rest)
	case "stats":
		err = s.stats(ctx, rest)
	default:
		err = s.alerts.WriteAlert(alerts.NewError(fmt.Sprintf("Unknown command %q", verb)).
			WithDetails(`Type "help" for commands.`))
	}

	return false, s.handle(err)
}

// handle turns recoverable failures into alerts.
func (s *Session) handle(err error) error {
	if err == nil || errors.IsCanceled(err) {
		return err
	}
	return s.alerts.WriteAlert(alerts.NewError("Command failed").WithError(err))
}

func (s *Session) listTools(ctx context.Context, search string) error {
	tools, err := s.client.Tools(ctx, s.category)
	if err != nil {
		return err
	}
	tools = (&filter.ToolFilter{Search: search}).Apply(tools)

	if len(tools) == 0 {
		return s.alerts.WriteAlert(alerts.NewInfo("No tools found"))
	}

	isFav, err := cmdutil.FavoriteMarker(ctx, s.client)
	if err != nil {
		return err
	}
	return s.printer.Tools(tools, isFav)
}

func (s *Session) listFavorites(ctx context.Context) error {
	favs, err := s.client.Favorites(ctx)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		return s.alerts.WriteAlert(alerts.NewInfo("No favorites yet").WithDetails("Add one with: add <id>"))
	}
	return s.printer.Tools(favs, nil)
}

func (s *Session) add(ctx context.Context, args string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	for _, id := range ids {
		err := s.client.AddFavorite(ctx, id)
		if errors.IsCanceled(err) {
			return err
		}
		if werr := s.alerts.WriteAlert(cmdutil.AddFavoriteAlert(s.client.Catalog(), id, err)); werr != nil {
			return werr
		}
	}
	return nil
}

func (s *Session) remove(ctx context.Context, args string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	for _, id := range ids {
		err := s.client.RemoveFavorite(ctx, id)
		if errors.IsCanceled(err) {
			return err
		}
		if werr := s.alerts.WriteAlert(cmdutil.RemoveFavoriteAlert(s.client.Catalog(), id, err)); werr != nil {
			return werr
		}
	}
	return nil
}

func (s *Session) stats(ctx context.Context, category string) error {
	counts, err := s.client.CategoryCounts(ctx, category)
	if err != nil {
		return err
	}
	return s.printer.Counts(counts)
}

func parseIDs(args string) ([]catalogs.ToolID, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, errors.NewValidationError("id", args, "at least one tool id is required")
	}
	return cmdutil.ParseToolIDs(fields)
}
