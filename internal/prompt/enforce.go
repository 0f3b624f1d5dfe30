package prompt

import (
	"slices"
	"strings"

	"github.com/tonecraft-ai/tonecraft-api/internal/registry"
	"github.com/tonecraft-ai/tonecraft-api/internal/rng"
)

// EnforceGenreCount rewrites the genre field of a prompt so it lists exactly
// clamp(n, 1, 4) comma-separated genres. Excess values are trimmed from the
// end; shortfalls are filled with distinct registry genres drawn through
// src, deduplicated case-insensitively against what is already listed. A
// prompt without a genre field gets one inserted: after the signature for
// MAX prompts, as a leading header line otherwise.
func EnforceGenreCount(text string, n int, src rng.Source) string {
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		key, value, quoted, ok := genreField(line)
		if !ok {
			continue
		}
		joined := strings.Join(adjustGenres(splitGenres(value), n, src), ", ")
		if quoted {
			lines[i] = key + `: "` + joined + `"`
		} else {
			lines[i] = key + ": " + joined
		}
		return strings.Join(lines, "\n")
	}

	joined := strings.Join(adjustGenres(nil, n, src), ", ")
	if IsMaxFormat(text) {
		for i, line := range lines {
			if strings.TrimSpace(line) == MaxSignature {
				out := make([]string, 0, len(lines)+1)
				out = append(out, lines[:i+1]...)
				out = append(out, `genre: "`+joined+`"`)
				out = append(out, lines[i+1:]...)
				return strings.Join(out, "\n")
			}
		}
	}
	return "Genre: " + joined + "\n" + text
}

// genreField matches a `genre:` line in either encoding, preserving the
// original key casing and whether the value was quoted.
func genreField(line string) (key, value string, quoted, ok bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", "", false, false
	}
	k := strings.TrimSpace(line[:i])
	if !strings.EqualFold(k, "genre") {
		return "", "", false, false
	}
	v := strings.TrimSpace(line[i+1:])
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return k, v[1 : len(v)-1], true, true
	}
	return k, v, false, true
}

func splitGenres(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// adjustGenres trims the list to n or pads it with registry genre names not
// already present. Registry candidates are drawn without replacement, so the
// result never repeats a genre.
func adjustGenres(genres []string, n int, src rng.Source) []string {
	if len(genres) > n {
		return genres[:n]
	}
	if len(genres) == n {
		return genres
	}

	present := make(map[string]bool, len(genres))
	for _, g := range genres {
		present[strings.ToLower(g)] = true
	}
	var candidates []string
	for _, key := range registry.GenreKeys() {
		genre, ok := registry.GetGenre(key)
		if !ok || present[strings.ToLower(genre.Name)] {
			continue
		}
		candidates = append(candidates, genre.Name)
	}

	for len(genres) < n && len(candidates) > 0 {
		i := rng.Index(src, len(candidates))
		genres = append(genres, candidates[i])
		candidates = slices.Delete(candidates, i, i+1)
	}
	return genres
}
