// Command client loads the designer catalog and a user's shortlist, applies the
// requested toggles and filters, and prints the resulting view.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"designer-shortlist/internal/application/catalog"
	"designer-shortlist/internal/application/notice"
	"designer-shortlist/internal/application/session"
	"designer-shortlist/internal/application/shortlist"
	"designer-shortlist/internal/config"
	"designer-shortlist/internal/infrastructure/cache"
	"designer-shortlist/internal/infrastructure/remote"
	"designer-shortlist/internal/pkg/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	tag           string
	search        string
	favoritesOnly bool
	toggles       []int64
	asJSON        bool
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	fs.SetOutput(out)
	var opts options
	fs.String("user", "", "user whose shortlist to load (USER_ID)")
	fs.String("base-url", "", "designer API base URL (API_BASE_URL)")
	fs.StringVar(&opts.tag, "tag", "", "show only designers with this tag")
	fs.StringVar(&opts.search, "search", "", "free-text filter over name, title, description, location and tags")
	fs.BoolVar(&opts.favoritesOnly, "favorites-only", false, "show only shortlisted designers (clears --tag)")
	fs.Int64SliceVar(&opts.toggles, "toggle", nil, "designer ids to add to or remove from the shortlist")
	fs.BoolVar(&opts.asJSON, "json", false, "print the view as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlag("USER_ID", fs.Lookup("user")); err != nil {
		return err
	}
	if err := v.BindPFlag("API_BASE_URL", fs.Lookup("base-url")); err != nil {
		return err
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	store, closeStore := openStore(cfg)
	defer closeStore()
	snap := &cache.Snapshot{Store: store, Key: cfg.CacheKey}

	client := remote.New(cfg.APIBaseURL, cfg.RequestTimeout, cfg.APIRateLimit)
	board := notice.NewBoard(cfg.NoticeTTL)
	sess := session.New(
		&catalog.Resolver{Remote: client, Cache: snap},
		shortlist.NewEngine(cfg.UserID, client, snap),
		board,
	)

	report := sess.Load(ctx)
	log.Debug().
		Str("catalog_tier", report.CatalogTier).
		Str("favorites_tier", report.FavoritesTier).
		Msg("Loaded")

	for _, id := range opts.toggles {
		res, err := sess.Toggle(ctx, id)
		switch {
		case errors.Is(err, session.ErrUnknownListing):
			fmt.Fprintf(out, "designer %d is not in the catalog\n", id)
		case res.Reverted:
			fmt.Fprintf(out, "designer %d: %s\n", id, res.Message)
		case err != nil:
			fmt.Fprintf(out, "designer %d: %v\n", id, err)
		case res.Favorite:
			fmt.Fprintf(out, "designer %d added to shortlist\n", id)
		default:
			fmt.Fprintf(out, "designer %d removed from shortlist\n", id)
		}
	}

	if opts.search != "" {
		sess.SetSearch(opts.search)
	}
	if opts.tag != "" {
		sess.SelectTag(opts.tag)
	}
	if opts.favoritesOnly {
		sess.ToggleFavoritesOnly()
	}

	view := sess.View()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			session.View
			Favorites []int64         `json:"favorites"`
			Notices   []notice.Notice `json:"notices"`
		}{view, sess.Favorites(), board.All()})
	}
	render(out, sess, view, board.All())
	return nil
}

// openStore returns the Redis cache when REDIS_URL is set and reachable, otherwise an
// in-process store that lives as long as this run.
func openStore(cfg *config.Config) (cache.Store, func()) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryStore(), func() {}
	}
	rs, err := cache.NewRedisStore(cfg.RedisURL, "shortlist:"+cfg.UserID+":", cfg.CacheTTL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis cache unavailable, using memory")
		return cache.NewMemoryStore(), func() {}
	}
	return rs, func() { _ = rs.Close() }
}

func render(out io.Writer, sess *session.Session, view session.View, notices []notice.Notice) {
	for _, n := range notices {
		fmt.Fprintf(out, "! %s\n", n.Message)
	}
	c := view.Criteria
	var filters []string
	if c.FavoritesOnly() {
		filters = append(filters, "favorites only")
	}
	if c.Tag != "" {
		filters = append(filters, "tag="+c.Tag)
	}
	if c.Search != "" {
		filters = append(filters, fmt.Sprintf("search=%q", c.Search))
	}
	header := fmt.Sprintf("%d designers, %d shortlisted", len(view.Listings), len(sess.Favorites()))
	if len(filters) > 0 {
		header += " (" + strings.Join(filters, ", ") + ")"
	}
	fmt.Fprintln(out, header)
	if len(view.Listings) == 0 {
		fmt.Fprintln(out, "  no designers match")
		return
	}
	for _, l := range view.Listings {
		mark := " "
		if sess.IsFavorite(l.ID) {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %2d  %-16s %-26s %-18s %.1f  %s %s  [%s]\n",
			mark, l.ID, l.Name, l.Title, l.Location, l.Rating, l.Price, l.PriceUnit, strings.Join(l.Tags, ", "))
	}
}
