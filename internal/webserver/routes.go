package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers, jwtSecret []byte) {
	allowIfNotLoggedIn := AllowIfNotLoggedIn(jwtSecret)
	alwaysRequireAuthentication := AlwaysRequireAuthentication(jwtSecret)
	optionalAuthentication := OptionalAuthentication(jwtSecret)

	app.Get("/login", allowIfNotLoggedIn, controllers.Auth.Login)
	app.Post("/login", allowIfNotLoggedIn, controllers.Auth.SignIn)
	app.Get("/register", allowIfNotLoggedIn, controllers.Users.New)
	app.Post("/register", allowIfNotLoggedIn, controllers.Users.Create)
	app.Get("/logout", controllers.Auth.SignOut)

	app.Get("/users/available", optionalAuthentication, JSONResponses, controllers.Users.Available)
	app.Get("/api/users/:id<int>", JSONResponses, controllers.Users.Show)

	profileGroup := app.Group("/profile", alwaysRequireAuthentication)
	profileGroup.Get("/", controllers.Users.Edit)
	profileGroup.Post("/", controllers.Users.Update)
	profileGroup.Post("/password", controllers.Users.UpdatePassword)

	app.Get("/boards/new", alwaysRequireAuthentication, controllers.Boards.New)
	app.Post("/boards", alwaysRequireAuthentication, controllers.Boards.Create)

	boardGroup := app.Group("/boards/:id<int>")

	// Owner only operations
	boardGroup.Post("/title", alwaysRequireAuthentication, controllers.Boards.UpdateTitle)
	boardGroup.Post("/done", alwaysRequireAuthentication, controllers.Boards.Done)
	boardGroup.Post("/delete", alwaysRequireAuthentication, controllers.Boards.Delete)
	boardGroup.Get("/invites", alwaysRequireAuthentication, JSONResponses, controllers.Invites.List)
	boardGroup.Post("/invites", alwaysRequireAuthentication, controllers.Invites.Create)
	boardGroup.Post("/invites/type", alwaysRequireAuthentication, controllers.Invites.UpdateType)
	boardGroup.Post("/invites/delete", alwaysRequireAuthentication, controllers.Invites.Delete)
	boardGroup.Post("/leave", alwaysRequireAuthentication, controllers.Invites.Leave)

	// Invitees without an account use these with the token of their invitation link
	boardGroup.Get("/", optionalAuthentication, controllers.Boards.Show)
	boardGroup.Get("/search", optionalAuthentication, controllers.Boards.Search)
	boardGroup.Get("/export", optionalAuthentication, controllers.Boards.Export)

	boardGroup.Get("/components", optionalAuthentication, JSONResponses, controllers.Contents.List)
	boardGroup.Post("/components", optionalAuthentication, JSONResponses, controllers.Contents.Create)
	boardGroup.Post("/components/:cid<int>", optionalAuthentication, JSONResponses, controllers.Contents.Update)
	boardGroup.Post("/components/:cid<int>/delete", optionalAuthentication, JSONResponses, controllers.Contents.Delete)

	app.Get("/", optionalAuthentication, controllers.Home.Index)
}
