package board

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Export sends the live content of the board as a plain text transcript
func (b *Controller) Export(c *fiber.Ctx) error {
	board, _, err := b.readable(c)
	if err != nil {
		return err
	}

	contents, err := b.contentRepository.Live(board.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	names := map[uint]string{}
	var transcript strings.Builder
	fmt.Fprintf(&transcript, "%s\n\n", board.Title)
	for _, content := range contents {
		fmt.Fprintf(&transcript, "[%s] %s (%s)", content.CreatedAt.UTC().Format("2006-01-02 15:04"), b.authorName(content, names), content.Type)
		if content.Position != "" && content.Type != model.TypeChat {
			fmt.Fprintf(&transcript, " @%s", content.Position)
		}
		fmt.Fprintf(&transcript, ":\n%s\n\n", content.Body)
	}

	filename := slug.Make(board.Title)
	if filename == "" {
		filename = fmt.Sprintf("board-%d", board.ID)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s.txt\"", filename))
	return c.SendString(transcript.String())
}

// authorName returns the username of registered authors, or the email of invitees
func (b *Controller) authorName(content model.Content, names map[uint]string) string {
	if content.UserID == nil {
		return content.Author()
	}

	id := *content.UserID
	if name, ok := names[id]; ok {
		return name
	}

	name := content.Author()
	if user, err := b.usersRepository.FindByID(id); err == nil && user != nil {
		name = user.Username
	}
	names[id] = name
	return name
}
