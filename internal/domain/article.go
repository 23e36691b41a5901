package domain

// Article is one knowledge-base entry. The article set ships with the app;
// there is no server round-trip.
type Article struct {
	ID       int
	Title    string
	Category string
	Content  string
	Tags     []string
}
