package board

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/view"
	"go.uber.org/zap"
)

// Search looks for content of the board matching the keywords in the query string
func (b *Controller) Search(c *fiber.Ctx) error {
	board, _, err := b.readable(c)
	if err != nil {
		return err
	}

	keywords := strings.TrimSpace(c.Query("q"))
	page := c.QueryInt("page", 1)

	results, err := b.idx.Search(board.ID, keywords, page, searchResultsPerPage)
	if err != nil {
		zap.L().Error("error searching board", zap.Uint("board", board.ID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	contents, err := b.contentRepository.ByIDs(board.ID, results.Hits())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if controller.WantsJSON(c) {
		return c.JSON(fiber.Map{
			"results":    controller.NewNames(b.usersRepository).Items(contents),
			"total":      results.TotalHits(),
			"page":       results.Page(),
			"totalPages": results.TotalPages(),
		})
	}

	params := map[string]string{"q": keywords}
	if token := controller.Caller(c).InviteToken; token != "" {
		params["invite"] = token
	}

	return c.Render("board/search", fiber.Map{
		"Title":       board.Title,
		"Board":       board,
		"Keywords":    keywords,
		"Results":     contents,
		"Total":       results.TotalHits(),
		"Paginator":   view.Pagination(view.MaxPagesNavigator, results, params),
		"InviteToken": controller.Caller(c).InviteToken,
	}, "layout")
}
