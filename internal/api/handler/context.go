package handler

import "github.com/labstack/echo/v4"

// ctxActor returns the username injected by the Auth middleware, or "" when
// the server runs unauthenticated. Audit events carry it as the actor.
func ctxActor(c echo.Context) string {
	actor, _ := c.Get("username").(string)
	return actor
}
