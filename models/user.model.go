package models

// User as returned by the LMS API auth endpoints
type User struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// AuthSession is the upstream login result
type AuthSession struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Registration is the body sent to the upstream register call
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
