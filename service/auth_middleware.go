package service

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"
	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
)

type Middleware struct {
	AuthService AuthServiceInterface
	Logger      LoggerInterface
}

func NewMiddleware(authService AuthServiceInterface, logger LoggerInterface) *Middleware {
	return &Middleware{AuthService: authService, Logger: logger}
}

// authCode pulls the caller's code from the X-Auth-Code header, the query
// string, or a "code" field in the JSON body, in that order. The body stays
// untouched for the handler's own BodyParser call.
func authCode(ctx *fiber.Ctx) string {
	if code := ctx.Get("X-Auth-Code"); code != "" {
		return code
	}
	if code := ctx.Query("code"); code != "" {
		return code
	}
	if len(ctx.Body()) > 0 {
		if parsed, err := gabs.ParseJSON(ctx.Body()); err == nil {
			if code, ok := parsed.Path("code").Data().(string); ok {
				return code
			}
		}
	}
	return ""
}

// RequireAuth resolves the auth code to a steam id and stores it in the
// request locals. Requests with no code or an unknown code never reach the
// handler.
func (m *Middleware) RequireAuth(ctx *fiber.Ctx) error {
	code := authCode(ctx)
	if code == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(model.Fail(model.ErrCodeRequired))
	}

	steamId, err := m.AuthService.Resolve(code)
	if err != nil {
		m.Logger.Exception(fmt.Sprintf("Error resolving auth code: %v", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(model.Fail(model.ErrDatabase))
	}
	if steamId == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(model.Fail(model.ErrInvalidCode))
	}

	ctx.Locals("steamId", steamId)
	ctx.Locals("code", code)
	return ctx.Next()
}
