package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonecraft-ai/tonecraft-api/internal/compose"
	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/services"
)

type generateOutput struct {
	Prompt      string   `json:"prompt"`
	Genre       string   `json:"genre"`
	GenreNames  []string `json:"genre_names"`
	BPMMin      int      `json:"bpm_min"`
	BPMMax      int      `json:"bpm_max"`
	BPMTypical  int      `json:"bpm_typical"`
	Mood        string   `json:"mood"`
	Instruments []string `json:"instruments"`
	StyleTags   []string `json:"style_tags,omitempty"`
	Recording   []string `json:"recording"`
	Title       string   `json:"title,omitempty"`
	Seed        uint64   `json:"seed"`
	Mode        string   `json:"mode"`
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		seedFlag        uint64
		maxFlag         bool
		genresFlag      []string
		instrumentsFlag []string
		descriptorsFlag int
		sceneFlag       string
		contrastFlag    []string
		arcFlag         []string
		genreCountFlag  int
		titleFlag       bool
	)

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a style prompt from a free-text description",
		Long: `Generate a style prompt from a free-text description.

The description is classified into a genre, then instruments, mood and
recording descriptors are drawn from that genre's pools. Pass --seed to
reproduce a previous generation exactly.

Examples:
  tonecraft generate "smooth jazz night session"
  tonecraft generate --max --seed 42 "deep house vibes"
  tonecraft generate --arc calm,euphoric,wistful "cinematic score"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contrast, err := parseContrastFlag(contrastFlag)
			if err != nil {
				return err
			}

			req := &services.StyleRequest{
				Description:      args[0],
				MaxMode:          maxFlag,
				Genres:           genresFlag,
				Instruments:      instrumentsFlag,
				DescriptorCount:  descriptorsFlag,
				Scene:            sceneFlag,
				Contrast:         contrast,
				NarrativeArc:     arcFlag,
				TargetGenreCount: genreCountFlag,
				WithTitle:        titleFlag,
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seedFlag
			}

			result, err := services.NewStyleService(nil).Generate(req)
			if err != nil {
				return err
			}

			mode := services.ModeStandard
			if result.MaxMode {
				mode = services.ModeMax
			}

			if opts.json {
				return writeJSON(cmd, generateOutput{
					Prompt:      result.Prompt,
					Genre:       result.Genre,
					GenreNames:  result.GenreNames,
					BPMMin:      result.BPM.Min,
					BPMMax:      result.BPM.Max,
					BPMTypical:  result.BPM.Typical,
					Mood:        result.Mood,
					Instruments: result.Instruments,
					StyleTags:   result.StyleTags,
					Recording:   result.Recording,
					Title:       result.Title,
					Seed:        result.Seed,
					Mode:        mode,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Genre: %s (%s)\n", result.Genre, strings.Join(result.GenreNames, ", "))
			fmt.Fprintf(out, "BPM:   %d-%d (typical %d)\n", result.BPM.Min, result.BPM.Max, result.BPM.Typical)
			fmt.Fprintf(out, "Mood:  %s\n", result.Mood)
			if result.Title != "" {
				fmt.Fprintf(out, "Title: %s\n", result.Title)
			}
			fmt.Fprintf(out, "Seed:  %d\n", result.Seed)
			fmt.Fprintf(out, "Mode:  %s\n\n", mode)
			fmt.Fprintln(out, result.Prompt)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for reproducible output (default: current time)")
	cmd.Flags().BoolVar(&maxFlag, "max", false, "Emit the MAX prompt encoding instead of the sectioned standard one")
	cmd.Flags().StringSliceVar(&genresFlag, "genre", nil, "Explicit genre keys, first is primary (skips classification)")
	cmd.Flags().StringSliceVar(&instrumentsFlag, "instrument", nil, "Instruments to include ahead of the pool draw")
	cmd.Flags().IntVar(&descriptorsFlag, "descriptors", 0, "Recording descriptor count, 1-4 (default 2)")
	cmd.Flags().StringVar(&sceneFlag, "scene", "", "Recording scene hint, e.g. \"live club set\"")
	cmd.Flags().StringArrayVar(&contrastFlag, "contrast", nil, "Per-section override as SECTION=MOOD[:DYNAMICS], repeatable")
	cmd.Flags().StringSliceVar(&arcFlag, "arc", nil, "Emotional arc mapped onto the sections, e.g. calm,euphoric,wistful")
	cmd.Flags().IntVar(&genreCountFlag, "genre-count", 0, "Force the genre line to hold exactly this many genres (1-4)")
	cmd.Flags().BoolVar(&titleFlag, "title", false, "Also generate a track title")

	return cmd
}

// parseContrastFlag parses repeatable SECTION=MOOD[:DYNAMICS] values.
func parseContrastFlag(values []string) ([]compose.SectionOverride, error) {
	if len(values) == 0 {
		return nil, nil
	}

	valid := make(map[registry.SectionType]bool)
	for _, s := range registry.SectionSequence() {
		valid[s] = true
	}

	overrides := make([]compose.SectionOverride, 0, len(values))
	for _, v := range values {
		section, rest, found := strings.Cut(v, "=")
		if !found {
			return nil, fmt.Errorf("invalid contrast %q, expected SECTION=MOOD[:DYNAMICS]", v)
		}
		sectionType := registry.SectionType(strings.ToUpper(strings.TrimSpace(section)))
		if !valid[sectionType] {
			return nil, fmt.Errorf("invalid section %q. Allowed: INTRO, VERSE, CHORUS, BRIDGE, OUTRO", section)
		}
		mood, dynamics, _ := strings.Cut(rest, ":")
		overrides = append(overrides, compose.SectionOverride{
			Section:  sectionType,
			Mood:     strings.TrimSpace(mood),
			Dynamics: strings.TrimSpace(dynamics),
		})
	}
	return overrides, nil
}
