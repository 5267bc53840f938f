package entity

type Movie struct {
	ID          string
	Title       string
	Language    string
	Genre       string
	DurationMin int
}
