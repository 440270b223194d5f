package model

// Session holds the user data carried inside the session JWT
type Session struct {
	ID       uint
	Uuid     string
	Name     string
	Username string
	Email    string
	Exp      float64
}

// DisplayName returns the name of the user, or its username if no name was provided
func (s Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}
