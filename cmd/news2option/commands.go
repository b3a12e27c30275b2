package main

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zappabad/news2option/internal/controller"
	"github.com/zappabad/news2option/internal/domain"
	"github.com/zappabad/news2option/internal/news"
	"github.com/zappabad/news2option/tui"
	"github.com/zappabad/news2option/tui/panels"
)

// printWidth is the card width used for non-interactive output.
const printWidth = 88

// --- TUI Command ---

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive client",
	RunE:  runTUI,
}

func addTUIFlags(c *cobra.Command) {
	c.Flags().String("route", "/", "page to open first: /, /analysis/<id> or /recommendations")
}

func runTUI(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("route")
	start, ok := controller.ParseRoute(raw)
	if !ok {
		return fmt.Errorf("invalid route %q", raw)
	}

	// The TUI owns the terminal, so logs go to the log file only.
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.NewModel(ctx, tui.Controllers{
		News:           a.News,
		Analysis:       a.Analysis,
		Recommendation: a.Recommendation,
	}, a.Log)
	model.StartAt(start)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.Config().AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// --- News Commands ---

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Print the recent news",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		query, _ := cmd.Flags().GetString("search")
		all, _ := cmd.Flags().GetBool("all")

		switch {
		case query != "":
			_ = a.News.Search(ctx, query)
		case all:
			items, err := a.Client.ListNews(ctx)
			resolved, fallback := news.ResolveNewsList(items, err, time.Now())
			printNews(cmd.OutOrStdout(), controller.NewsListState{News: resolved, UsingFallback: fallback})
			return nil
		default:
			_ = a.News.Load(ctx)
		}

		printNews(cmd.OutOrStdout(), a.News.Snapshot())
		return nil
	},
}

func init() {
	newsCmd.Flags().String("search", "", "only news whose title contains this text")
	newsCmd.Flags().Bool("all", false, "every stored article instead of the recent ones")
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Ask the backend to collect the latest news, then print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		_ = a.News.Collect(cmd.Context())
		printNews(cmd.OutOrStdout(), a.News.Snapshot())
		return nil
	},
}

func printNews(w io.Writer, s controller.NewsListState) {
	if s.Notice != "" {
		fmt.Fprintln(w, panels.RenderError(s.Notice, printWidth))
	}
	if s.UsingFallback {
		fmt.Fprintln(w, panels.RenderWarning(panels.FallbackBanner, printWidth))
	}
	if len(s.News) == 0 {
		fmt.Fprintln(w, panels.NoNewsFound)
		return
	}
	for _, item := range s.News {
		card := panels.RenderNewsCard(item, printWidth, false)
		if item.Navigable() {
			card = fmt.Sprintf("#%d\n%s", item.ID, card)
		}
		fmt.Fprintln(w, card)
	}
}

// --- Analysis Commands ---

var analysisCmd = &cobra.Command{
	Use:   "analysis [news-id]",
	Short: "Print the impact analysis of a news article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := controller.ParseNewsID(args[0])
		if !ok {
			return fmt.Errorf("invalid news id %q: want a positive integer", args[0])
		}

		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		_ = a.Analysis.Load(cmd.Context(), id)
		fmt.Fprintln(cmd.OutOrStdout(), panels.RenderAnalysisOutcome(a.Analysis.Snapshot().Outcome, printWidth))
		return nil
	},
}

var analysesCmd = &cobra.Command{
	Use:   "analyses",
	Short: "List recent analyses with their industry impacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		all, _ := cmd.Flags().GetBool("all")
		list := a.Client.ListRecentAnalyses
		if all {
			list = a.Client.ListAnalyses
		}

		analyses, err := list(cmd.Context())
		if err != nil {
			return fmt.Errorf("list analyses: %w", err)
		}
		printAnalyses(cmd.OutOrStdout(), analyses)
		return nil
	},
}

func init() {
	analysesCmd.Flags().Bool("all", false, "every stored analysis instead of the recent ones")
}

func printAnalyses(w io.Writer, analyses []domain.NewsAnalysis) {
	if len(analyses) == 0 {
		fmt.Fprintln(w, "No analyses found.")
		return
	}
	for _, an := range analyses {
		fmt.Fprintf(w, "#%d %s (%s)\n", an.News.ID, an.News.Title, panels.FormatTime(an.AnalyzedAt))
		for _, ind := range an.IndustryImpacts {
			fmt.Fprintf(w, "    %-28s %-8s %s\n", ind.IndustryName, ind.ImpactType, ind.ImpactScore)
		}
	}
}

// --- Recommendation Commands ---

var recommendationCmd = &cobra.Command{
	Use:   "recommendation",
	Short: "Print the latest daily investment recommendation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var day domain.Date
		if raw, _ := cmd.Flags().GetString("date"); raw != "" {
			d, err := domain.ParseDate(raw)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			day = d
		}

		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		_ = a.Recommendation.LoadByDate(cmd.Context(), day)
		fmt.Fprintln(cmd.OutOrStdout(), panels.RenderRecommendationState(a.Recommendation.Snapshot(), printWidth))
		return nil
	},
}

func init() {
	recommendationCmd.Flags().String("date", "", "day of the recommendation (yyyy-mm-dd)")
}

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations",
	Short: "Print every stored daily recommendation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		recs, err := a.Client.ListRecommendations(cmd.Context())
		if err != nil {
			return fmt.Errorf("list recommendations: %w", err)
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), controller.MsgNoRecommendation)
			return nil
		}
		for _, r := range recs {
			fmt.Fprintln(cmd.OutOrStdout(), panels.RenderRecommendationCard(r, printWidth))
		}
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the backend for a new recommendation, then print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		_ = a.Recommendation.Generate(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), panels.RenderRecommendationState(a.Recommendation.Snapshot(), printWidth))
		return nil
	},
}

// --- Digest Command ---

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print the recent news and the latest recommendation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		g, gctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error { return a.News.Load(gctx) })
		g.Go(func() error { return a.Recommendation.Load(gctx) })
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printNews(out, a.News.Snapshot())
		fmt.Fprintln(out)
		fmt.Fprintln(out, panels.RenderRecommendationState(a.Recommendation.Snapshot(), printWidth))
		return nil
	},
}
