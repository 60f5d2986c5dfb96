package content

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/shayulman/radiodesk/internal/progress"
)

// DefaultIncludes are the glob patterns matched during a media import.
var DefaultIncludes = []string{
	"**/*.mp3",
	"**/*.wav",
	"**/*.flac",
	"**/*.ogg",
	"**/*.m4a",
}

// kindByDir maps well-known library directory names to content kinds.
// Anything else imports as a song.
var kindByDir = map[string]Kind{
	"jingles":       KindJingle,
	"shows":         KindShow,
	"commercials":   KindCommercial,
	"announcements": KindAnnouncement,
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Scanned  int
	Imported int
	Skipped  int
}

// ImportDir scans a media directory and creates a library item for every
// matching audio file not already imported. Kind is inferred from the file's
// top-level directory, title from its name. Durations are left at zero; the
// storage sync service fills them in later.
func (s *Store) ImportDir(ctx context.Context, dir string, includes []string, rep progress.Reporter) (ImportResult, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		if matchesAny(rel, includes) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("walking %s: %w", dir, err)
	}

	result := ImportResult{Scanned: len(paths)}
	rep.Start(len(paths))
	defer rep.Finish()

	for i, rel := range paths {
		rep.Update(i+1, rel)

		full := filepath.Join(dir, rel)
		exists, err := s.HasFilePath(ctx, full)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}

		it := itemFromPath(rel)
		it.FilePath = full
		if err := s.CreateItem(ctx, it); err != nil {
			return result, fmt.Errorf("importing %s: %w", rel, err)
		}
		result.Imported++
	}
	return result, nil
}

// itemFromPath derives library metadata from a relative media path.
func itemFromPath(rel string) *Item {
	rel = filepath.ToSlash(rel)

	kind := KindSong
	if i := strings.IndexByte(rel, '/'); i > 0 {
		if k, ok := kindByDir[strings.ToLower(rel[:i])]; ok {
			kind = k
		}
	}

	base := filepath.Base(rel)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	title = strings.ReplaceAll(title, "_", " ")

	// "Artist - Title" file naming is common in song libraries.
	var artist string
	if kind == KindSong {
		if parts := strings.SplitN(title, " - ", 2); len(parts) == 2 {
			artist = strings.TrimSpace(parts[0])
			title = strings.TrimSpace(parts[1])
		}
	}

	return &Item{Title: title, Artist: artist, Kind: kind}
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(normalized)); err == nil && matched {
			return true
		}
	}
	return false
}
