package domain

type Book struct {
	ID              int32   `json:"book_id"`
	Title           string  `json:"title"`
	AuthorID        int32   `json:"author_id"`
	PublisherID     int32   `json:"publisher_id"`
	CategoryID      int32   `json:"category_id"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear int32   `json:"publication_year"`
	CopiesAvailable int32   `json:"copies_available"`
}

// BookDetail is the joined projection served for a single book lookup.
type BookDetail struct {
	Title           string  `json:"title"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear int32   `json:"publication_year"`
	CopiesAvailable int32   `json:"copies_available"`
	AuthorFirstName string  `json:"author_first_name"`
	AuthorLastName  string  `json:"author_last_name"`
	PublisherName   string  `json:"publisher_name"`
	CategoryName    string  `json:"category_name"`
}
