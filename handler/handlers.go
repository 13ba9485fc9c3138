package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
	"kawe_webmanager/service"
)

// Pinger is the slice of the repository the health check needs.
type Pinger interface {
	Ping() error
}

type Handler struct {
	Auth         service.AuthServiceInterface
	Faction      service.FactionServiceInterface
	Quest        service.QuestServiceInterface
	Player       service.PlayerServiceInterface
	Shop         service.ShopServiceInterface
	Logger       service.LoggerInterface
	DB           Pinger
	Version      string
	CommandsPath string
}

func New(auth service.AuthServiceInterface, faction service.FactionServiceInterface, quest service.QuestServiceInterface, player service.PlayerServiceInterface, shop service.ShopServiceInterface, logService service.LoggerInterface, db Pinger, version string, commandsPath string) *Handler {
	return &Handler{
		Auth:         auth,
		Faction:      faction,
		Quest:        quest,
		Player:       player,
		Shop:         shop,
		Logger:       logService,
		DB:           db,
		Version:      version,
		CommandsPath: commandsPath,
	}
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeRequired, model.ErrInvalidCode:
		return http.StatusUnauthorized
	case model.ErrInsufficientPermissions, model.ErrCannotDemoteSelf:
		return http.StatusForbidden
	case model.ErrQuestNotFound, model.ErrItemNotFound, model.ErrPlayerNotFound, model.ErrFactionNotFound:
		return http.StatusNotFound
	case model.ErrPluginUnavailable, model.ErrPluginTimeout:
		return http.StatusServiceUnavailable
	case model.ErrDatabase, model.ErrInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// fail translates a service error into the coded JSON body the SPA expects.
// Backend failures are logged with the raw cause; client mistakes are not.
func (h *Handler) fail(ctx *fiber.Ctx, op string, err error) error {
	code := model.ErrorCode(err)
	if !model.IsClientError(code) {
		h.Logger.Exception(fmt.Sprintf("%s: %v", op, err))
	}
	return ctx.Status(statusFor(code)).JSON(model.Fail(code))
}

// steamId is set by the auth middleware for every authenticated route.
func steamId(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals("steamId").(string); ok {
		return v
	}
	return ""
}

func (h *Handler) Health(ctx *fiber.Ctx) error {
	if err := h.DB.Ping(); err != nil {
		h.Logger.Exception(fmt.Sprintf("Health(): database unreachable: %v", err))
		return ctx.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": "down",
			"version":  h.Version,
		})
	}

	return ctx.JSON(fiber.Map{
		"status":   "ok",
		"database": "up",
		"version":  h.Version,
	})
}

func (h *Handler) Dashboard(ctx *fiber.Ctx) error {
	stats, err := h.Player.Dashboard()
	if err != nil {
		return h.fail(ctx, "Dashboard(): error fetching stats", err)
	}
	return ctx.JSON(stats)
}

// restrictedKeyword flags command names and permissions that must never be
// shown to players.
func restrictedKeyword(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "admin") || strings.Contains(s, "debug") || strings.Contains(s, "reload")
}

func hiddenCommand(cmd *gabs.Container) bool {
	if v, ok := cmd.Path("isAdmin").Data().(bool); ok && v {
		return true
	}
	if v, ok := cmd.Path("isDebug").Data().(bool); ok && v {
		return true
	}
	for _, perm := range cmd.Path("permissions").Children() {
		if s, ok := perm.Data().(string); ok && restrictedKeyword(s) {
			return true
		}
	}
	if name, ok := cmd.Path("name").Data().(string); ok && restrictedKeyword(name) {
		return true
	}
	return false
}

// Commands serves the command reference the UI renders, with admin and debug
// commands stripped out. The file is re-read per request so edits show up
// without a restart.
func (h *Handler) Commands(ctx *fiber.Ctx) error {
	parsed, err := gabs.ParseJSONFile(h.CommandsPath)
	if err != nil {
		h.Logger.Exception(fmt.Sprintf("Commands(): error reading %s: %v", h.CommandsPath, err))
		return ctx.Status(http.StatusInternalServerError).JSON(model.Fail(model.ErrInternal))
	}

	out := gabs.New()
	out.Array("commands")
	grouped := gabs.New()

	total := 0
	for _, cmd := range parsed.Path("commands").Children() {
		if hiddenCommand(cmd) {
			continue
		}

		out.ArrayAppend(cmd.Data(), "commands")
		total++

		category, ok := cmd.Path("category").Data().(string)
		if !ok || category == "" {
			category = "Other"
		}
		if !grouped.Exists(category) {
			grouped.Array(category)
		}
		grouped.ArrayAppend(cmd.Data(), category)
	}

	out.Set(grouped.Data(), "grouped")
	out.Set(total, "total")

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.SendString(out.String())
}

func (h *Handler) Login(ctx *fiber.Ctx) error {
	var data model.LoginAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("Login(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeRequired))
	}

	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusUnauthorized).JSON(model.Fail(model.ErrCodeRequired))
	}

	result, err := h.Auth.Login(&data)
	if err != nil {
		return h.fail(ctx, "Login(): error verifying auth code", err)
	}

	return ctx.JSON(result)
}
