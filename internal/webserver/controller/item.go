package controller

import (
	"strconv"
	"time"

	"github.com/svera/corkboard/internal/webserver/model"
)

// Item is the JSON representation of a content item. Authors are shown by
// username, or by the invite email for invitees without an account.
type Item struct {
	ID             uint      `json:"id"`
	Type           string    `json:"type"`
	Body           string    `json:"body"`
	Position       string    `json:"position"`
	Author         string    `json:"author"`
	LastModifiedBy string    `json:"lastModifiedBy"`
	Created        time.Time `json:"created"`
	Modified       int64     `json:"modified"`
	Deleted        bool      `json:"deleted"`
}

type userFinder interface {
	FindByID(id uint) (*model.User, error)
}

// Names resolves identities into the names shown to users, caching lookups during a request
type Names struct {
	users userFinder
	cache map[string]string
}

func NewNames(users userFinder) *Names {
	return &Names{users: users, cache: map[string]string{}}
}

func (n *Names) Of(identity string) string {
	if name, ok := n.cache[identity]; ok {
		return name
	}

	name := identity
	if id, err := strconv.ParseUint(identity, 10, 64); err == nil {
		if user, err := n.users.FindByID(uint(id)); err == nil && user != nil {
			name = user.Username
		}
	}
	n.cache[identity] = name
	return name
}

func (n *Names) Item(content model.Content) Item {
	it := Item{
		ID:             content.ID,
		Type:           content.Type,
		Position:       content.Position,
		Author:         n.Of(content.Author()),
		LastModifiedBy: n.Of(content.LastModifiedBy),
		Created:        content.CreatedAt,
		Modified:       content.Modified,
		Deleted:        content.Deleted,
	}
	if !content.Deleted {
		it.Body = content.Body
	}
	return it
}

// Items maps a list of content through Item
func (n *Names) Items(contents []model.Content) []Item {
	items := make([]Item, 0, len(contents))
	for _, content := range contents {
		items = append(items, n.Item(content))
	}
	return items
}
