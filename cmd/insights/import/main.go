package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sitecms "github.com/goliatone/go-sitecms"
	"github.com/goliatone/go-sitecms/domain"
	"github.com/goliatone/go-sitecms/insights"
	"github.com/goliatone/go-sitecms/internal/markdown"
)

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("insights import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("insights-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content/insights", "Path to the markdown article root")
	dbPath := fs.String("db", "sitecms.db", "Path to the SQLite database")
	defaultLocale := fs.String("default-locale", "en", "Locale applied to articles without one")
	publish := fs.Bool("publish", false, "Publish imported articles that are not marked draft")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting content")

	if err := fs.Parse(args); err != nil {
		return err
	}

	articles, err := markdown.LoadArticles(*contentDir)
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	if len(articles) == 0 {
		fmt.Fprintln(os.Stdout, "no articles found")
		return nil
	}

	if *dryRun {
		for _, article := range articles {
			fmt.Fprintf(os.Stdout, "would import %s (slug=%s locale=%s category=%s draft=%t)\n",
				article.Path, article.FrontMatter.Slug, localeOf(article, *defaultLocale),
				article.FrontMatter.Category, article.FrontMatter.Draft)
		}
		return nil
	}

	db, err := sitecms.OpenSQLite(*dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	module, err := sitecms.New(sitecms.DefaultConfig(), sitecms.WithDB(db))
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	ctx := context.Background()
	if err := module.Seed(ctx); err != nil {
		return fmt.Errorf("seed locales: %w", err)
	}

	imported := 0
	for _, article := range articles {
		req := saveRequest(article, *defaultLocale, *publish)
		if _, err := module.Insights().Save(ctx, req); err != nil {
			return fmt.Errorf("import %s: %w", article.Path, err)
		}
		imported++
	}
	fmt.Fprintf(os.Stdout, "imported %d articles\n", imported)
	return nil
}

func saveRequest(article markdown.ArticleFile, defaultLocale string, publish bool) insights.SavePostRequest {
	meta := article.FrontMatter
	req := insights.SavePostRequest{
		Slug:         meta.Slug,
		CategoryKey:  meta.Category,
		Status:       domain.StatusDraft,
		Locale:       localeOf(article, defaultLocale),
		Title:        meta.Title,
		Excerpt:      meta.Excerpt,
		BodyMarkdown: string(article.Body),
	}
	if meta.CoverImage != "" {
		cover := meta.CoverImage
		req.CoverImageURL = &cover
	}
	if meta.SEOTitle != "" {
		seoTitle := meta.SEOTitle
		req.SEOTitle = &seoTitle
	}
	if meta.SEODescription != "" {
		seoDescription := meta.SEODescription
		req.SEODescription = &seoDescription
	}
	if publish && !meta.Draft {
		req.Status = domain.StatusPublished
		if !meta.Date.IsZero() {
			date := meta.Date.UTC()
			req.PublishedAt = &date
		} else {
			now := time.Now().UTC()
			req.PublishedAt = &now
		}
	}
	return req
}

func localeOf(article markdown.ArticleFile, fallback string) string {
	if article.FrontMatter.Locale != "" {
		return article.FrontMatter.Locale
	}
	return fallback
}
