package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
)

func (h *Handler) Players(ctx *fiber.Ctx) error {
	players, err := h.Player.List()
	if err != nil {
		return h.fail(ctx, "Players(): error listing players", err)
	}
	return ctx.JSON(players)
}

func (h *Handler) PlayerDetail(ctx *fiber.Ctx) error {
	id := ctx.Params("steamId")
	if id == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrPlayerNotFound))
	}

	detail, err := h.Player.Detail(id)
	if err != nil {
		return h.fail(ctx, "PlayerDetail(): error fetching player detail", err)
	}
	return ctx.JSON(detail)
}

func (h *Handler) PlayerStats(ctx *fiber.Ctx) error {
	id := ctx.Params("steamId")
	if id == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrPlayerNotFound))
	}

	stats, err := h.Player.Stats(id)
	if err != nil {
		return h.fail(ctx, "PlayerStats(): error fetching player stats", err)
	}
	if stats == nil {
		return ctx.Status(http.StatusNotFound).JSON(model.Fail(model.ErrPlayerNotFound))
	}
	return ctx.JSON(stats)
}
