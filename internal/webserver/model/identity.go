package model

import "strconv"

// UserIdentity renders a user ID the way it is stored as lock holder and as
// last modifier of content items. Invitees without an account are identified
// by their email, which can never collide with a number.
func UserIdentity(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
