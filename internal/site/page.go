// Package site composes the CosmicUI page from a site configuration.
package site

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/timeline"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

var featureIcons = map[string]string{
	"navigation": "➤",
	"settings":   "⚙",
	"zap":        "ϟ",
	"shield":     "◈",
	"headphones": "♫",
	"globe":      "◍",
}

// Page renders the site. The exported fields are the interactive state the
// browser changes between renders.
type Page struct {
	cfg   *config.Config
	theme components.Theme

	// Category filters the skills grid.
	Category string
	// Timeline is the experience section, newest first.
	Timeline []timeline.Entry
	// Contact replaces the contact section body, e.g. with an open form.
	Contact ui.Renderable
	// Year is printed in the footer.
	Year int
}

// New creates a page for cfg with the configured timeline entries. It fails
// when an entry's date cannot be parsed, which ValidateConfig would have caught
// for configs loaded from YAML.
func New(cfg *config.Config) (*Page, error) {
	entries, err := timeline.FromConfig(cfg.Timeline.Entries)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	return NewWithTimeline(cfg, entries), nil
}

// NewWithTimeline creates a page for cfg showing entries instead of the
// configured timeline.
func NewWithTimeline(cfg *config.Config, entries []timeline.Entry) *Page {
	return &Page{
		cfg:      cfg,
		theme:    ThemeFor(cfg),
		Category: AllCategories,
		Timeline: timeline.Merge(cfg.Timeline.Limit, entries),
		Year:     time.Now().Year(),
	}
}

// Render loads the timeline, including git milestones when configured, and
// renders the page at width.
func Render(ctx context.Context, cfg *config.Config, width int) (string, Layout, error) {
	entries, err := LoadTimeline(ctx, cfg)
	if err != nil {
		return "", Layout{}, err
	}
	view, layout := NewWithTimeline(cfg, entries).Render(width)
	return view, layout, nil
}

// LoadTimeline merges configured entries with tags from the configured repository.
func LoadTimeline(ctx context.Context, cfg *config.Config) ([]timeline.Entry, error) {
	entries, err := timeline.FromConfig(cfg.Timeline.Entries)
	if err != nil {
		return nil, err
	}
	if cfg.Timeline.Git == nil {
		return timeline.Merge(cfg.Timeline.Limit, entries), nil
	}

	tags, err := timeline.FromGit(ctx, cfg.Timeline.Git.Path, cfg.Timeline.Limit)
	if err != nil {
		return nil, err
	}
	return timeline.Merge(cfg.Timeline.Limit, entries, tags), nil
}

// Config returns the configuration the page renders.
func (p *Page) Config() *config.Config {
	return p.cfg
}

// Theme returns the theme derived from the configuration.
func (p *Page) Theme() components.Theme {
	return p.theme
}

// Skills returns the skills grid.
func (p *Page) Skills() Skills {
	return Skills(p.cfg.Skills)
}

// Render draws every section in navigation order followed by the footer,
// separated by blank lines, and reports where each section landed.
func (p *Page) Render(width int) (string, Layout) {
	if width <= 0 {
		width = DefaultWidth
	}
	ctx := components.DefaultContext().WithTheme(p.theme).WithWidth(width)

	var (
		parts  []string
		layout Layout
		offset int
	)
	for _, item := range p.cfg.Nav {
		view := components.Render(p.section(item.ID, width), ctx)
		height := lipgloss.Height(view)
		layout.Sections = append(layout.Sections, Section{ID: item.ID, Offset: offset, Height: height})
		parts = append(parts, view)
		offset += height + 1
	}
	parts = append(parts, components.Render(p.footer(), ctx))

	page := strings.Join(parts, "\n\n")
	layout.Height = lipgloss.Height(page)
	return page, layout
}

func (p *Page) section(id string, width int) ui.Renderable {
	switch id {
	case config.SectionHome:
		return p.hero()
	case config.SectionAbout:
		return components.VStack(p.features(width), p.skills()).WithGap(1)
	case config.SectionProjects:
		return p.projects(width)
	case config.SectionExperience:
		return p.experience()
	case config.SectionContact:
		return p.contact()
	default:
		return components.MutedText(id)
	}
}

func (p *Page) hero() ui.Renderable {
	headline := components.NewGradientText(p.cfg.Headline.Text).Bold()
	if p.cfg.Headline.Glow {
		headline.WithShade(components.ShadeGlow)
	}

	buttons := components.HStack(
		components.NewButton("Begin Journey"),
		components.NewButton("Learn More").WithVariant(components.ButtonVariantOutline).WithAccent(components.PaletteTertiary),
	).WithGap(2)

	stack := components.VStack(headline)
	if p.cfg.Headline.Tagline != "" {
		stack.Add(components.BodyText(p.cfg.Headline.Tagline).Wrapped())
	}
	return stack.Add(buttons).WithGap(1)
}

func (p *Page) features(width int) ui.Renderable {
	header := components.NewHeader("Discover Cosmic Features").WithGradient().
		WithSubtitle("Our platform offers a range of stellar features to enhance your journey through the digital cosmos")

	columns, cardWidth := gridColumns(width)
	cards := make([]ui.Renderable, 0, len(p.cfg.Features))
	for _, f := range p.cfg.Features {
		title := f.Title
		if icon, ok := featureIcons[f.Icon]; ok {
			title = icon + " " + title
		}
		card := components.NewCard(components.BodyText(f.Description).Wrapped()).
			WithTitle(title).
			WithWidth(cardWidth)
		if f.Color != "" {
			card.WithAccentColor(colorOr(f.Color, p.theme.Palette.Primary))
		}
		cards = append(cards, card)
	}

	return components.VStack(header, components.Grid(columns, 1, cards...)).WithGap(1)
}

func (p *Page) skills() ui.Renderable {
	skills := p.Skills()

	badges := components.HStack().WithGap(1)
	for _, category := range skills.Categories() {
		if category == p.Category {
			badges.Add(components.ActiveBadge(category))
		} else {
			badges.Add(components.NewBadge(category))
		}
	}

	meters := components.VStack()
	for _, skill := range skills.Filter(p.Category) {
		meter := components.NewMeter(skill.Name, skill.Level)
		if skill.Color != "" {
			meter.WithColor(colorOr(skill.Color, p.theme.Palette.Tertiary))
		}
		meters.Add(meter)
	}

	return components.VStack(components.NewHeader("Technical Skills"), badges, meters).WithGap(1)
}

func (p *Page) projects(width int) ui.Renderable {
	columns, cardWidth := gridColumns(width)

	cards := make([]ui.Renderable, 0, len(p.cfg.Projects))
	for _, project := range SortProjects(p.cfg.Projects) {
		body := components.VStack(
			components.MutedText(project.Category),
			components.BodyText(project.Description).Wrapped(),
		)
		for _, link := range []string{project.LiveURL, project.GithubURL} {
			if link != "" {
				body.Add(components.CodeText(link))
			}
		}

		tech := components.HStack().WithGap(1)
		for _, t := range project.Technologies {
			tech.Add(components.NewBadge(t).WithVariant(components.BadgeVariantTertiary))
		}

		title := project.Title
		card := components.NewCard(body).WithWidth(cardWidth)
		if project.Featured {
			title = "★ " + title
			card.WithAccent(components.PalettePrimary)
		}
		card.WithTitle(title)
		if len(project.Technologies) > 0 {
			card.WithFooter(tech)
		}
		cards = append(cards, card)
	}

	return components.VStack(components.NewHeader("Featured Projects").WithGradient(), components.Grid(columns, 1, cards...)).WithGap(1)
}

func (p *Page) experience() ui.Renderable {
	stack := components.VStack(components.NewHeader("Experience").WithGradient()).WithGap(1)
	if len(p.Timeline) == 0 {
		return stack.Add(components.MutedText("No milestones yet."))
	}

	for _, entry := range p.Timeline {
		date := components.MutedText(fmt.Sprintf("%-10s", entry.Label()))
		detail := components.VStack(components.EmphasisText(entry.Title))
		if entry.Description != "" {
			detail.Add(components.BodyText(entry.Description).Wrapped())
		}
		stack.Add(components.HStack(date, detail).WithGap(1))
	}
	return stack
}

func (p *Page) contact() ui.Renderable {
	header := components.NewHeader("Let's Connect").WithGradient().
		WithSubtitle("Ready to bring your ideas to life? Drop me a message!")

	if p.Contact != nil {
		return components.VStack(header, p.Contact).WithGap(1)
	}

	stack := components.VStack(header).WithGap(1)
	if recipient := p.cfg.Contact.Recipient; recipient != "" {
		stack.Add(components.BodyText("Messages are delivered to " + recipient))
	}
	return stack.Add(components.MutedText("Press f in the browser to write a message."))
}

func (p *Page) footer() ui.Renderable {
	return components.VStack(
		components.HorizontalDivider(),
		components.MutedText(fmt.Sprintf("© %d %s. All rights reserved.", p.Year, p.cfg.Name)),
	)
}

// gridColumns picks a column count for width and the card width that fits it.
func gridColumns(width int) (columns, cardWidth int) {
	switch {
	case width >= 120:
		columns = 3
	case width >= 72:
		columns = 2
	default:
		columns = 1
	}
	return columns, (width - (columns - 1)) / columns
}
