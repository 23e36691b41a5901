package kb

import (
	"strings"

	"threeclick/internal/domain"
)

// CategoryAll selects every article regardless of category.
const CategoryAll = "all"

var articles = []domain.Article{
	{
		ID:       1,
		Title:    "Getting Started with 3-Click Website Builder",
		Category: "Getting Started",
		Content: "Creating your website is as easy as 1-2-3: enter your business name, " +
			"select your service type, and choose your location. That's it! Your website " +
			"will be generated instantly.",
		Tags: []string{"beginner", "setup", "tutorial"},
	},
	{
		ID:       2,
		Title:    "Customizing Your Website",
		Category: "Customization",
		Content: "After creating your website, you can customize it in several ways: " +
			"change the color scheme, add your logo, customize the layout, and add " +
			"additional pages.",
		Tags: []string{"customization", "design", "layout"},
	},
	{
		ID:       3,
		Title:    "Publishing Your Website",
		Category: "Publishing",
		Content: "To publish your website: click the \"Publish\" button, choose your " +
			"domain name, select your hosting plan, and complete the payment process.",
		Tags: []string{"publishing", "domain", "hosting"},
	},
}

// Base serves the built-in article set.
type Base struct {
	articles []domain.Article
}

// New returns a Base over the stock articles.
func New() *Base {
	return &Base{articles: articles}
}

// Articles returns every article in order.
func (b *Base) Articles() []domain.Article {
	out := make([]domain.Article, len(b.articles))
	copy(out, b.articles)
	return out
}

// Categories returns the distinct categories in article order.
func (b *Base) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range b.articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}

// ByCategory returns the articles in the named category; CategoryAll returns
// everything. Category comparison is exact.
func (b *Base) ByCategory(category string) []domain.Article {
	if category == CategoryAll {
		return b.Articles()
	}
	var out []domain.Article
	for _, a := range b.articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Search returns articles whose title, category, tags or content contain
// query as a case-insensitive substring. An empty query returns everything.
func (b *Base) Search(query string) []domain.Article {
	if query == "" {
		return b.Articles()
	}
	q := strings.ToLower(query)
	var out []domain.Article
	for _, a := range b.articles {
		haystack := strings.ToLower(a.Title + " " + a.Category + " " + strings.Join(a.Tags, " ") + " " + a.Content)
		if strings.Contains(haystack, q) {
			out = append(out, a)
		}
	}
	return out
}

// Select returns the article with the given ID.
func (b *Base) Select(id int) (domain.Article, bool) {
	for _, a := range b.articles {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Article{}, false
}
