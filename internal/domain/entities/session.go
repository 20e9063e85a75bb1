package entities

// Session identifies who is acting and on behalf of which company.
// It is built by the auth middleware and handed to every use case call.
type Session struct {
	CompanyID string
	UserID    string
	UserName  string
}

func (s Session) Valid() bool {
	return s.CompanyID != ""
}
