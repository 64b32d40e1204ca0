package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

func validSite() *Config {
	cfg := &Config{
		Version:  "1.0.0",
		Name:     "Valid",
		Headline: Headline{Text: "Explore"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{name: "valid", mutate: func(cfg *Config) {}},
		{
			name: "unordered stops",
			mutate: func(cfg *Config) {
				cfg.Headline.Stops = []Stop{
					{Position: 0, Color: "#000"},
					{Position: 0.8, Color: "#111"},
					{Position: 0.4, Color: "#222"},
				}
			},
			field: "headline.stops[2].position",
		},
		{
			name: "shared stop positions are allowed",
			mutate: func(cfg *Config) {
				cfg.Headline.Stops = []Stop{
					{Position: 0, Color: "#000"},
					{Position: 0.5, Color: "#111"},
					{Position: 0.5, Color: "#222"},
				}
			},
		},
		{
			name: "stop position out of range",
			mutate: func(cfg *Config) {
				cfg.Headline.Stops = []Stop{{Position: 1.5, Color: "#000"}}
			},
			field: "headline.stops[0].position",
		},
		{
			name: "unparseable stop color",
			mutate: func(cfg *Config) {
				cfg.Headline.Stops = []Stop{{Position: 0, Color: "plaid"}}
			},
			field: "headline.stops[0].color",
		},
		{
			name:   "unknown nav section",
			mutate: func(cfg *Config) { cfg.Nav = []NavItem{{ID: "pricing", Label: "Pricing"}} },
			field:  "nav[0].id",
		},
		{
			name: "duplicate nav section",
			mutate: func(cfg *Config) {
				cfg.Nav = []NavItem{{ID: "home", Label: "Home"}, {ID: "home", Label: "Again"}}
			},
			field: "nav[1].id",
		},
		{
			name:   "skill level above 100",
			mutate: func(cfg *Config) { cfg.Skills = []Skill{{Name: "Go", Level: 101, Category: "Backend"}} },
			field:  "skills[0].level",
		},
		{
			name:   "project category outside the known set",
			mutate: func(cfg *Config) { cfg.Projects = []Project{{Title: "X", Category: "games"}} },
			field:  "projects[0].category",
		},
		{
			name:   "timeline date format",
			mutate: func(cfg *Config) { cfg.Timeline.Entries = []TimelineEntry{{Date: "June 2024", Title: "Job"}} },
			field:  "timeline.entries[0].date",
		},
		{
			name:   "smtp host without recipient",
			mutate: func(cfg *Config) { cfg.Contact.SMTP.Host = "smtp.example.com" },
			field:  "contact.recipient",
		},
		{
			name:   "bad server address",
			mutate: func(cfg *Config) { cfg.Server.Addr = "localhost" },
			field:  "server.addr",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validSite()
			tc.mutate(cfg)
			err := ValidateConfig(cfg)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *cosmicerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *cosmicerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestParseTimelineDate(t *testing.T) {
	t.Parallel()

	ts, err := ParseTimelineDate("2024-06-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), ts)

	ts, err = ParseTimelineDate("2022-03")
	require.NoError(t, err)
	require.Equal(t, time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), ts)

	ts, err = ParseTimelineDate(" 2019 ")
	require.NoError(t, err)
	require.Equal(t, 2019, ts.Year())

	_, err = ParseTimelineDate("yesterday")
	require.Error(t, err)
}
