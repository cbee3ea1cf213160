package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the resolved identity for a request
type UserContext struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsResolved bool   `json:"is_resolved"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserContext); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsResolved: false}
}

// Set stores the user context in fiber Locals.
func Set(c *fiber.Ctx, ctx UserContext) {
	c.Locals(KeyUserContext, ctx)
	c.Locals(KeyUserID, ctx.UserID)
	c.Locals(KeyUserName, ctx.Username)
}

// GetUserID returns the current user's ID, or empty string if unresolved
func GetUserID(c *fiber.Ctx) string {
	return GetUserContext(c).UserID
}
