package entity

// Category mahsulot kategoriyasi
type Category struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
}
