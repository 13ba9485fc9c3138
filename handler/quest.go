package handler

import (
	"fmt"
	"net/http"

	"github.com/Jeffail/gabs/v2"
	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
)

func (h *Handler) Quests(ctx *fiber.Ctx) error {
	quests, err := h.Quest.List()
	if err != nil {
		return h.fail(ctx, "Quests(): error listing quests", err)
	}
	return ctx.JSON(quests)
}

func (h *Handler) QuestDetail(ctx *fiber.Ctx) error {
	detail, err := h.Quest.Get(ctx.Params("id"))
	if err != nil {
		return h.fail(ctx, "QuestDetail(): error fetching quest", err)
	}
	if detail == nil {
		return ctx.Status(http.StatusNotFound).JSON(model.Fail(model.ErrQuestNotFound))
	}
	return ctx.JSON(detail)
}

func (h *Handler) NextQuestId(ctx *fiber.Ctx) error {
	id, err := h.Quest.NextId()
	if err != nil {
		return h.fail(ctx, "NextQuestId(): error generating quest id", err)
	}
	return ctx.JSON(fiber.Map{"success": true, "id": id})
}

func (h *Handler) SaveQuest(ctx *fiber.Ctx) error {
	var data model.QuestAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("SaveQuest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrValidation))
	}

	// An omitted "enabled" key means enabled; only an explicit false disables.
	if body, parseErr := gabs.ParseJSON(ctx.Body()); parseErr == nil && !body.Exists("enabled") {
		data.Enabled = true
	}

	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.FailMsg(model.ErrValidation, err.Error()))
	}

	if err := h.Quest.Save(&data); err != nil {
		return h.fail(ctx, "SaveQuest(): error saving quest", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Quest saved"})
}

func (h *Handler) PlayerQuests(ctx *fiber.Ctx) error {
	quests, err := h.Quest.PlayerQuests(steamId(ctx))
	if err != nil {
		return h.fail(ctx, "PlayerQuests(): error fetching player quests", err)
	}
	return ctx.JSON(quests)
}

func (h *Handler) AvailableQuests(ctx *fiber.Ctx) error {
	quests, err := h.Quest.AvailableQuests(steamId(ctx))
	if err != nil {
		return h.fail(ctx, "AvailableQuests(): error fetching available quests", err)
	}
	return ctx.JSON(quests)
}

func (h *Handler) AssignQuest(ctx *fiber.Ctx) error {
	var data model.QuestIdAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("AssignQuest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndQuestRequired))
	}
	if data.QuestId == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndQuestRequired))
	}

	if err := h.Quest.Assign(steamId(ctx), data.QuestId); err != nil {
		return h.fail(ctx, "AssignQuest(): error assigning quest", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Quest assigned"})
}

func (h *Handler) TurnInQuest(ctx *fiber.Ctx) error {
	var data model.QuestIdAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("TurnInQuest(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrCodeAndQuestRequired))
	}
	if data.QuestId == "" {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrCodeAndQuestRequired))
	}

	result, err := h.Quest.TurnIn(steamId(ctx), data.QuestId)
	if err != nil {
		return h.fail(ctx, "TurnInQuest(): error queueing turn-in", err)
	}

	return ctx.JSON(result)
}
