package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
	"threeclick/internal/widgets/kb"
)

func kbCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "kb [query]",
		Short: "Search the knowledge base",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := wire.KB

			if category != "" {
				return printArticles(base.ByCategory(category))
			}
			if len(args) == 1 {
				// A numeric argument selects an article by id.
				if id, err := strconv.Atoi(args[0]); err == nil {
					a, ok := base.Select(id)
					if !ok {
						return fmt.Errorf("no article with id %d", id)
					}
					fmt.Printf("%s\n[%s] %s\n\n%s\n", a.Title, a.Category, strings.Join(a.Tags, ", "), a.Content)
					return nil
				}
				return printArticles(base.Search(args[0]))
			}
			return printArticles(base.Articles())
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category ("+strings.Join(kb.New().Categories(), ", ")+")")
	return cmd
}

func printArticles(articles []domain.Article) error {
	if len(articles) == 0 {
		fmt.Println("No articles found")
		return nil
	}
	for _, a := range articles {
		fmt.Printf("%d\t%s\t[%s]\t%s\n", a.ID, a.Title, a.Category, strings.Join(a.Tags, ", "))
	}
	return nil
}
