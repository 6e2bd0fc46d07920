package imageutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/skyway-ai/skyway-go/chat"
)

// PartsFromGlob loads every image under dir matching a doublestar
// pattern (** supported) and converts each to a content part, applying
// the same options as ToContentPart. Matches are processed in lexical
// path order so the resulting part sequence is deterministic.
//
//	parts, err := imageutil.PartsFromGlob("./shots", "**/*.png",
//	    imageutil.WithMaxSize(1024))
//	msg := chat.UserMessageParts(append([]chat.ContentPart{chat.Text("Compare these")}, parts...)...)
//
// A file that fails to convert aborts the whole load; partial results
// are never returned.
func PartsFromGlob(dir, pattern string, opts ...Option) ([]chat.ContentPart, error) {
	fsys := os.DirFS(filepath.Clean(dir))
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", pattern, err)
	}
	sort.Strings(matches)

	parts := make([]chat.ContentPart, 0, len(matches))
	for _, match := range matches {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(match)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", match, err)
		}

		part, err := ToContentPart(data, opts...)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", match, err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}
