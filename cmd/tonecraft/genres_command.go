package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
)

type genreOutput struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BPMMin      int      `json:"bpm_min"`
	BPMMax      int      `json:"bpm_max"`
	BPMTypical  int      `json:"bpm_typical"`
	MaxTags     int      `json:"max_tags"`
	Moods       []string `json:"moods"`
}

func newGenresCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List every genre in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := registry.GenreKeys()

			if opts.json {
				genres := make([]genreOutput, 0, len(keys))
				for _, key := range keys {
					genre, ok := registry.GetGenre(key)
					if !ok {
						continue
					}
					genres = append(genres, genreOutput{
						Key:         genre.Key,
						Name:        genre.Name,
						Description: genre.Description,
						BPMMin:      genre.BPM.Min,
						BPMMax:      genre.BPM.Max,
						BPMTypical:  genre.BPM.Typical,
						MaxTags:     genre.MaxTags,
						Moods:       genre.Moods,
					})
				}
				return writeJSON(cmd, genres)
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				genre, ok := registry.GetGenre(key)
				if !ok {
					continue
				}
				rows = append(rows, []string{
					genre.Key,
					genre.Name,
					fmt.Sprintf("%d-%d", genre.BPM.Min, genre.BPM.Max),
					fmt.Sprintf("%d", genre.BPM.Typical),
					fmt.Sprintf("%d", genre.MaxTags),
					strings.Join(genre.Moods, ", "),
				})
			}

			headers := []string{"KEY", "NAME", "BPM", "TYPICAL", "MAX TAGS", "MOODS"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 2, 3, 4))
			return nil
		},
	}
}
