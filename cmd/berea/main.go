// Command berea is the CLI for the Berea scripture engine. It exposes the
// translation catalog, passage retrieval, search, reference parsing, and
// cache maintenance.
package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/openscripture/berea/core/apibible"
	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/core/cache"
	"github.com/openscripture/berea/core/passages"
	"github.com/openscripture/berea/core/reference"
	"github.com/openscripture/berea/core/search"
	"github.com/openscripture/berea/core/sqlite"
	"github.com/openscripture/berea/core/translations"
	"github.com/openscripture/berea/internal/config"
	"github.com/openscripture/berea/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for berea.
var CLI struct {
	Translations TranslationsGroup `cmd:"" help:"Translation catalog operations"`
	Passages     PassagesGroup     `cmd:"" help:"Passage retrieval and filtering"`
	Search       SearchCmd         `cmd:"" help:"Full-text search within a translation"`
	Ref          RefGroup          `cmd:"" help:"Bible reference parsing and conversion"`
	Cache        CacheGroup        `cmd:"" help:"Cache maintenance"`
	Version      VersionCmd        `cmd:"" help:"Print version information"`
}

// TranslationsGroup contains catalog operations.
type TranslationsGroup struct {
	List TranslationsListCmd `cmd:"" help:"List translations"`
}

// PassagesGroup contains passage operations.
type PassagesGroup struct {
	Get    PassagesGetCmd    `cmd:"" help:"Retrieve passages for a reference expression"`
	Filter PassagesFilterCmd `cmd:"" help:"Retrieve passages with content fragments filtered"`
}

// RefGroup contains standalone reference utilities. These run offline.
type RefGroup struct {
	Parse RefParseCmd `cmd:"" help:"Parse a reference and show its structure"`
	Osis  RefOsisCmd  `cmd:"" help:"Convert a reference to an OSIS string"`
}

// CacheGroup contains cache maintenance operations.
type CacheGroup struct {
	Invalidate CacheInvalidateCmd `cmd:"" help:"Invalidate cached entries"`
}

// services wires the configured cache backend, API client, and the engine
// services on top of it.
type services struct {
	cfg      *config.Config
	store    *cache.Store
	client   *apibible.Client
	catalog  *translations.Service
	passages *passages.Service
	search   *search.Service

	closer func() error
}

func newServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.InitLogger(logging.ParseLevel(cfg.LogLevel), logging.ParseFormat(cfg.LogFormat))

	var backend cache.Backend
	closer := func() error { return nil }
	switch cfg.CacheBackend {
	case config.BackendSQLite:
		sq, err := cache.NewSQLite(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("opening cache database: %w", err)
		}
		backend, closer = sq, sq.Close
	case config.BackendRedis:
		rd := cache.NewRedis(cfg.RedisAddr)
		backend, closer = rd, rd.Close
	default:
		backend = cache.NewMemory(cfg.CacheSize)
	}
	store := cache.NewStore(backend, cfg.CacheTTL)

	client := apibible.New(cfg.APIKey,
		apibible.WithBaseURL(cfg.BaseURL),
		apibible.WithStore(store))

	catalog := translations.New(client, store, translationSettings(cfg))

	return &services{
		cfg:      cfg,
		store:    store,
		client:   client,
		catalog:  catalog,
		passages: passages.New(client, store, catalog),
		search:   search.New(client, catalog),
		closer:   closer,
	}, nil
}

func (s *services) Close() error {
	return s.closer()
}

// TranslationsListCmd lists active translations, or every translation the
// credential can see with --all.
type TranslationsListCmd struct {
	All bool `help:"Include translations that are not enabled"`
}

func (c *TranslationsListCmd) Run() error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()
	ctx := context.Background()

	if c.All {
		available := svc.catalog.Available(ctx)
		for _, id := range svc.catalog.List(ctx) {
			info := available[id]
			enabled := " "
			if svc.catalog.IsEnabled(id) {
				enabled = "*"
			}
			fmt.Printf("%s %-16s %-8s %s\n", enabled, info.ID, info.Abbreviation(), info.Name())
		}
		return nil
	}

	active := svc.catalog.Active(ctx)
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := active[id]
		fmt.Printf("%-16s %-8s %-24s %d books\n", t.ID, t.Abbreviation(), t.Name(), len(t.Books))
	}
	return nil
}

// PassagesGetCmd retrieves the passages named by a reference expression.
type PassagesGetCmd struct {
	Osis        string `arg:"" help:"Reference expression (comma/semicolon separated)"`
	Translation string `required:"" help:"Translation ID"`
}

func (c *PassagesGetCmd) Run() error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result := svc.passages.Passages(context.Background(), c.Osis, []string{c.Translation})
	if len(result) == 0 {
		return fmt.Errorf("no passages found for %q in %s", c.Osis, c.Translation)
	}
	for _, p := range result {
		fmt.Printf("%s (%s)\n", p.Name, p.Osis)
		fmt.Println(p.Content)
	}
	return nil
}

// PassagesFilterCmd retrieves passages and strips content fragments not
// named by --include.
type PassagesFilterCmd struct {
	Osis        string   `arg:"" help:"Reference expression"`
	Translation string   `required:"" help:"Translation ID"`
	Include     []string `help:"Fragments to keep: headings, footnotes, verse-numbers, chapter-numbers, cross-references, all, none" default:"all"`
}

func (c *PassagesFilterCmd) Run() error {
	include, err := parseFragments(c.Include)
	if err != nil {
		return err
	}
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result := svc.passages.Passages(context.Background(), c.Osis, []string{c.Translation})
	if len(result) == 0 {
		return fmt.Errorf("no passages found for %q in %s", c.Osis, c.Translation)
	}
	for _, p := range result {
		fmt.Printf("%s (%s)\n", p.Name, p.Osis)
		fmt.Println(passages.FilterContent(p, include))
	}
	return nil
}

// SearchCmd runs a full-text query against one translation.
type SearchCmd struct {
	Query       string `arg:"" help:"Search query"`
	Translation string `required:"" help:"Translation ID"`
	Sort        string `help:"Result order" enum:"relevance,bookorder" default:"relevance"`
	Page        int    `help:"1-based result page" default:"1"`
	Limit       int    `help:"Results per page" default:"20"`
}

func (c *SearchCmd) Run() error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result := svc.search.Search(context.Background(), c.Query, c.Translation, bible.SortOrder(c.Sort), c.Page, c.Limit)
	if result.Total == 0 {
		fmt.Println("No results.")
		return nil
	}
	fmt.Printf("Results %d-%d of %d\n", result.From+1, result.To+1, result.Total)
	for _, hit := range result.Hits {
		fmt.Printf("%4d. %s (%s)\n      %s\n", hit.Number, hit.Passage.Name, hit.Passage.Osis, hit.Passage.Content)
	}
	return nil
}

// RefParseCmd parses a reference and prints its structure.
type RefParseCmd struct {
	Reference string `arg:"" help:"Reference to parse"`
	Format    string `help:"Declared format (standard, biblegateway, apidotbible); auto-detected when omitted" default:""`
}

func (c *RefParseCmd) Run() error {
	format, err := parseRefFormat(c.Format)
	if err != nil {
		return err
	}
	ref, err := reference.Parse(c.Reference, format)
	if err != nil {
		return err
	}
	fmt.Printf("Display: %s\n", ref)
	fmt.Printf("Range:   %v\n", ref.IsRange())
	fmt.Printf("OSIS:    %s\n", ref.OsisString(reference.FormatAPIDotBible, reference.PartAll))
	return nil
}

// RefOsisCmd converts a reference to an OSIS string in a target vocabulary.
type RefOsisCmd struct {
	Reference string `arg:"" help:"Reference to convert"`
	To        string `required:"" help:"Target format (standard, biblegateway, apidotbible)"`
	Part      string `help:"Granularity" enum:"book,chapter,verse,all" default:"all"`
}

func (c *RefOsisCmd) Run() error {
	format, err := parseRefFormat(c.To)
	if err != nil {
		return err
	}
	if format == "" {
		return fmt.Errorf("--to requires an explicit format")
	}
	ref, err := reference.Parse(c.Reference, "")
	if err != nil {
		return err
	}
	fmt.Println(ref.OsisString(format, parsePart(c.Part)))
	return nil
}

// CacheInvalidateCmd drops cached entries, optionally scoped to one tag.
type CacheInvalidateCmd struct {
	Tag string `help:"Invalidate only this tag (e.g. CacheItems_PassageService)"`
}

func (c *CacheInvalidateCmd) Run() error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	if c.Tag != "" {
		if !svc.store.InvalidateTag(c.Tag) {
			return fmt.Errorf("failed to invalidate tag %s", c.Tag)
		}
		fmt.Printf("Invalidated: %s\n", c.Tag)
		return nil
	}
	if !svc.store.InvalidateAll() {
		return fmt.Errorf("failed to invalidate cache")
	}
	fmt.Println("Invalidated: all entries")
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("berea version %s\n", version)
	info := sqlite.GetInfo()
	fmt.Printf("  sqlite driver: %s (%s)\n", info.DriverName, info.DriverType)
	return nil
}

// Helper functions

// translationSettings maps the configured translation list and display
// overrides to catalog settings. Overrides apply to any translation they
// name, enabled or not.
func translationSettings(cfg *config.Config) map[string]translations.Settings {
	settings := make(map[string]translations.Settings, len(cfg.Translations))
	for _, id := range cfg.Translations {
		s := settings[id]
		s.Enabled = true
		settings[id] = s
	}
	for id, name := range cfg.TranslationNames {
		s := settings[id]
		s.CustomName = name
		settings[id] = s
	}
	for id, abbreviation := range cfg.TranslationAbbreviations {
		s := settings[id]
		s.CustomAbbreviation = abbreviation
		settings[id] = s
	}
	return settings
}

func parseRefFormat(name string) (reference.Format, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "standard":
		return reference.FormatStandard, nil
	case "biblegateway":
		return reference.FormatBibleGateway, nil
	case "apidotbible":
		return reference.FormatAPIDotBible, nil
	default:
		return "", fmt.Errorf("unknown reference format %q", name)
	}
}

func parsePart(name string) reference.Part {
	switch name {
	case "book":
		return reference.PartBook
	case "chapter":
		return reference.PartChapter
	case "verse":
		return reference.PartVerse
	default:
		return reference.PartAll
	}
}

func parseFragments(names []string) (bible.Fragments, error) {
	include := bible.FragmentsNone
	for _, name := range names {
		switch strings.ToLower(name) {
		case "all":
			include = bible.FragmentsAll
		case "none":
			include = bible.FragmentsNone
		case "headings":
			include = include.Add(bible.FragmentHeadings)
		case "footnotes":
			include = include.Add(bible.FragmentFootnotes)
		case "verse-numbers":
			include = include.Add(bible.FragmentVerseNumbers)
		case "chapter-numbers":
			include = include.Add(bible.FragmentChapterNumbers)
		case "cross-references":
			include = include.Add(bible.FragmentCrossReferences)
		default:
			return 0, fmt.Errorf("unknown fragment %q", name)
		}
	}
	return include, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("berea"),
		kong.Description("Berea - scripture retrieval and search engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
