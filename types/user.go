package types

// UserProfile display fields joined onto comments, posts and notifications at read time.
type UserProfile struct {
	ID       uint64 `json:"id,string"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Image    string `json:"image"`
}

type CurrentUserResponse struct {
	ID        uint64  `json:"id,string"`
	Username  string  `json:"username"`
	Fullname  string  `json:"fullname"`
	Email     string  `json:"email"`
	Bio       *string `json:"bio,omitempty"`
	Image     string  `json:"image"`
	Followers int64   `json:"followers"`
	Following int64   `json:"following"`
	Posts     int64   `json:"posts"`
}

// ClerkUserEvent is the user.created payload reduced to what identity sync needs.
type ClerkUserEvent struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	ImageURL   string
}
