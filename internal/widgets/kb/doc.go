// Package kb implements the knowledge base widget over a static article set.
// Articles can be filtered by category or searched by case-insensitive
// substring across title, category, tags and content.
package kb
