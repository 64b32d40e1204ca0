package config

import (
	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

// Section identifiers in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionContact    = "contact"
)

// Config represents the full site document.
type Config struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Name     string    `yaml:"name" validate:"required,min=1,max=100"`
	Headline Headline  `yaml:"headline"`
	Theme    Theme     `yaml:"theme,omitempty"`
	Nav      []NavItem `yaml:"nav,omitempty" validate:"omitempty,dive"`
	Features []Feature `yaml:"features,omitempty" validate:"omitempty,dive"`
	Skills   []Skill   `yaml:"skills,omitempty" validate:"omitempty,dive"`
	Projects []Project `yaml:"projects,omitempty" validate:"omitempty,dive"`
	Timeline Timeline  `yaml:"timeline,omitempty"`
	Contact  Contact   `yaml:"contact,omitempty"`
	Server   Server    `yaml:"server,omitempty"`
}

// Headline configures the hero title and the gradient used to color it.
type Headline struct {
	Text    string `yaml:"text" validate:"required,max=80"`
	Tagline string `yaml:"tagline,omitempty"`
	Stops   []Stop `yaml:"stops,omitempty" validate:"omitempty,dive"`
	// Glow renders the headline with the glow variant of each letter.
	Glow bool `yaml:"glow,omitempty"`
}

// Stop is the YAML form of a gradient.ColorStop.
type Stop struct {
	Position float64 `yaml:"position" validate:"gte=0,lte=1"`
	Color    string  `yaml:"color" validate:"required,color"`
}

// Theme holds the three accent colors of the site.
type Theme struct {
	Primary    string `yaml:"primary,omitempty" validate:"omitempty,color"`
	Secondary  string `yaml:"secondary,omitempty" validate:"omitempty,color"`
	Tertiary   string `yaml:"tertiary,omitempty" validate:"omitempty,color"`
	Background string `yaml:"background,omitempty" validate:"omitempty,color"`
}

// NavItem is one entry in the navigation bar.
type NavItem struct {
	ID    string `yaml:"id" validate:"required,section_id"`
	Label string `yaml:"label" validate:"required,max=24"`
}

// Feature is a card in the features grid.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Color       string `yaml:"color,omitempty" validate:"omitempty,color"`
}

// Skill is one entry of the skills grid.
type Skill struct {
	Name     string `yaml:"name" validate:"required"`
	Level    int    `yaml:"level" validate:"gte=0,lte=100"`
	Category string `yaml:"category" validate:"required"`
	Color    string `yaml:"color,omitempty" validate:"omitempty,color"`
}

// Project is a project card.
type Project struct {
	Title        string   `yaml:"title" validate:"required"`
	Description  string   `yaml:"description,omitempty"`
	Category     string   `yaml:"category" validate:"required,oneof=frontend fullstack mobile design"`
	Technologies []string `yaml:"technologies,omitempty"`
	LiveURL      string   `yaml:"live_url,omitempty" validate:"omitempty,url"`
	GithubURL    string   `yaml:"github_url,omitempty" validate:"omitempty,url"`
	Featured     bool     `yaml:"featured,omitempty"`
}

// Timeline lists experience entries and optionally a repository to mine for milestones.
type Timeline struct {
	Entries []TimelineEntry `yaml:"entries,omitempty" validate:"omitempty,dive"`
	Git     *GitSource      `yaml:"git,omitempty"`
	Limit   int             `yaml:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// TimelineEntry is a dated milestone.
type TimelineEntry struct {
	Date        string `yaml:"date" validate:"required,timeline_date"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// GitSource points at a local repository whose tags become timeline entries.
type GitSource struct {
	Path string `yaml:"path" validate:"required"`
}

// Contact configures where contact form submissions are delivered.
type Contact struct {
	Recipient string `yaml:"recipient,omitempty" validate:"omitempty,email"`
	Sender    string `yaml:"sender,omitempty" validate:"omitempty,email"`
	SMTP      SMTP   `yaml:"smtp,omitempty"`
}

// SMTP holds mail transport settings. The password is read from the
// environment variable named by PasswordEnv, never from the file.
type SMTP struct {
	Host        string `yaml:"host,omitempty" validate:"omitempty,hostname_rfc1123"`
	Port        int    `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	Username    string `yaml:"username,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty"`
}

// Server configures the contact endpoint listener.
type Server struct {
	Addr string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
}

// Defaults applied by ApplyDefaults.
const (
	DefaultServerAddr    = ":3000"
	DefaultSMTPPort      = 587
	DefaultPasswordEnv   = "EMAIL_PASS"
	DefaultTimelineLimit = 10
)

// DefaultNav lists every section in page order.
var DefaultNav = []NavItem{
	{ID: SectionHome, Label: "Home"},
	{ID: SectionAbout, Label: "About"},
	{ID: SectionProjects, Label: "Projects"},
	{ID: SectionExperience, Label: "Experience"},
	{ID: SectionContact, Label: "Contact"},
}

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	if len(c.Nav) == 0 {
		c.Nav = append([]NavItem(nil), DefaultNav...)
	}
	if c.Theme.Primary == "" {
		c.Theme.Primary = "#ff69b4"
	}
	if c.Theme.Secondary == "" {
		c.Theme.Secondary = "#8a2be2"
	}
	if c.Theme.Tertiary == "" {
		c.Theme.Tertiary = "#1e90ff"
	}
	if c.Theme.Background == "" {
		c.Theme.Background = "#0a0118"
	}
	if c.Timeline.Limit == 0 {
		c.Timeline.Limit = DefaultTimelineLimit
	}
	if c.Contact.SMTP.Port == 0 {
		c.Contact.SMTP.Port = DefaultSMTPPort
	}
	if c.Contact.SMTP.PasswordEnv == "" {
		c.Contact.SMTP.PasswordEnv = DefaultPasswordEnv
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// HeadlineStops converts the configured stops to resolver input.
// Without configured stops the default headline gradient is used.
func (c *Config) HeadlineStops() gradient.Stops {
	if c == nil || len(c.Headline.Stops) == 0 {
		return gradient.DefaultHeadline
	}

	stops := make(gradient.Stops, 0, len(c.Headline.Stops))
	for _, s := range c.Headline.Stops {
		color, err := gradient.ParseColor(s.Color)
		if err != nil {
			// Validated configs never reach this; keep the slot visible.
			color = gradient.White
		}
		stops = append(stops, gradient.ColorStop{Position: s.Position, Color: color})
	}
	return stops
}
