package entity

// Page is skip/limit pagination. A zero Limit means no limit.
type Page struct {
	Skip  int64
	Limit int64
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string
	Page   Page
}
