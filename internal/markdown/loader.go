package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ArticleFile is one parsed Markdown article from disk.
type ArticleFile struct {
	Path        string
	FrontMatter ArticleFrontMatter
	Body        []byte
}

// LoadArticles walks a directory tree and parses every .md file. Files are
// returned sorted by path so imports are deterministic.
func LoadArticles(dir string) ([]ArticleFile, error) {
	var out []ArticleFile
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read article %s: %w", path, err)
		}
		meta, body, err := ParseArticle(source)
		if err != nil {
			return fmt.Errorf("article %s: %w", path, err)
		}
		out = append(out, ArticleFile{Path: path, FrontMatter: meta, Body: body})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
