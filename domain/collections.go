package domain

const (
	CollectionBooks = "books"
)
const (
	CollectionUsers = "users"
)
