package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
)

func (h *Handler) Factions(ctx *fiber.Ctx) error {
	factions, err := h.Faction.List()
	if err != nil {
		return h.fail(ctx, "Factions(): error listing factions", err)
	}
	return ctx.JSON(factions)
}

func (h *Handler) FactionDetail(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrFactionNotFound))
	}

	detail, err := h.Faction.Detail(id)
	if err != nil {
		return h.fail(ctx, "FactionDetail(): error fetching faction", err)
	}
	if detail == nil {
		return ctx.Status(http.StatusNotFound).JSON(model.Fail(model.ErrFactionNotFound))
	}

	return ctx.JSON(detail)
}

func (h *Handler) FactionQuests(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrFactionNotFound))
	}

	quests, err := h.Faction.Quests(id)
	if err != nil {
		return h.fail(ctx, "FactionQuests(): error fetching faction quests", err)
	}
	return ctx.JSON(quests)
}

func (h *Handler) FactionInfo(ctx *fiber.Ctx) error {
	info, err := h.Faction.Info(steamId(ctx))
	if err != nil {
		return h.fail(ctx, "FactionInfo(): error building faction info", err)
	}
	return ctx.JSON(info)
}

func (h *Handler) FactionInvite(ctx *fiber.Ctx) error {
	var data model.TargetAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionInvite(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}
	if data.TargetId() == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}

	if err := h.Faction.Invite(steamId(ctx), data.TargetId()); err != nil {
		return h.fail(ctx, "FactionInvite(): error inviting player", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Invitation sent"})
}

func (h *Handler) FactionAcceptRequest(ctx *fiber.Ctx) error {
	var data model.TargetAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionAcceptRequest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}
	if data.TargetId() == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}

	if err := h.Faction.AcceptRequest(steamId(ctx), data.TargetId()); err != nil {
		return h.fail(ctx, "FactionAcceptRequest(): error accepting request", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Request accepted"})
}

func (h *Handler) FactionRejectRequest(ctx *fiber.Ctx) error {
	var data model.TargetAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionRejectRequest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}
	if data.TargetId() == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndTargetRequired))
	}

	if err := h.Faction.RejectRequest(steamId(ctx), data.TargetId()); err != nil {
		return h.fail(ctx, "FactionRejectRequest(): error rejecting request", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Request rejected"})
}

func (h *Handler) FactionSetAlias(ctx *fiber.Ctx) error {
	var data model.SetAliasAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionSetAlias(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndRoleRequired))
	}
	if data.Role == nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndRoleRequired))
	}

	if err := h.Faction.SetAlias(steamId(ctx), data.Role, data.Alias); err != nil {
		return h.fail(ctx, "FactionSetAlias(): error setting alias", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Alias updated"})
}

func (h *Handler) FactionSetRole(ctx *fiber.Ctx) error {
	var data model.SetRoleAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionSetRole(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeTargetRoleRequired))
	}
	if data.TargetId() == "" || data.Role == nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeTargetRoleRequired))
	}

	result, err := h.Faction.SetRole(steamId(ctx), &data)
	if err != nil {
		return h.fail(ctx, "FactionSetRole(): error setting role", err)
	}

	return ctx.JSON(result)
}

func (h *Handler) FactionAvailableQuests(ctx *fiber.Ctx) error {
	quests, err := h.Faction.AvailableQuests(steamId(ctx))
	if err != nil {
		return h.fail(ctx, "FactionAvailableQuests(): error fetching quests", err)
	}
	return ctx.JSON(quests)
}

func (h *Handler) FactionAssignQuest(ctx *fiber.Ctx) error {
	var data model.AssignQuestAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("FactionAssignQuest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeQuestMembersRequired))
	}
	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeQuestMembersRequired))
	}

	result, err := h.Faction.AssignQuest(steamId(ctx), &data)
	if err != nil {
		return h.fail(ctx, "FactionAssignQuest(): error assigning quest", err)
	}

	return ctx.JSON(result)
}
