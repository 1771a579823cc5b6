package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gfmartins/postdeck/internal/article"
	"github.com/gfmartins/postdeck/internal/config"
	"github.com/gfmartins/postdeck/internal/contentful"
	"github.com/gfmartins/postdeck/internal/filter"
	"github.com/spf13/cobra"
)

var (
	flagQuery    string
	flagCategory string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Fetch and print the post list",
	Long:  "Fetch the normalized post list once and print it, newest first. Same search\nand category filtering as the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		articles, err := fetchOnce()
		if err != nil {
			return err
		}

		visible := filter.Visible(articles, flagQuery, flagCategory)
		if len(visible) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		for _, a := range visible {
			fmt.Println(formatPostLine(a))
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the distinct post categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		articles, err := fetchOnce()
		if err != nil {
			return err
		}

		categories := filter.Categories(articles)
		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}
		fmt.Println(strings.Join(categories, "\n"))
		return nil
	},
}

func init() {
	postsCmd.Flags().StringVar(&flagQuery, "query", "", "search in title, excerpt and author")
	postsCmd.Flags().StringVar(&flagCategory, "category", "", "only posts in this category (exact match)")
}

func fetchOnce() ([]article.Article, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	client, err := contentful.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return client.FetchArticles(ctx)
}

func formatPostLine(a article.Article) string {
	var b strings.Builder
	if t, ok := a.PublishedTime(); ok {
		b.WriteString(t.Format("2006-01-02"))
	} else {
		b.WriteString("          ")
	}
	b.WriteString("  ")
	b.WriteString(a.Title)
	if a.Category != "" {
		b.WriteString("  [" + a.Category + "]")
	}
	if a.Author != "" {
		b.WriteString("  by " + a.Author)
	}
	return b.String()
}
