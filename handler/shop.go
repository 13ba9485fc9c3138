package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jeffail/gabs/v2"
	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/model"
)

func (h *Handler) ShopItems(ctx *fiber.Ctx) error {
	items, err := h.Shop.List()
	if err != nil {
		return h.fail(ctx, "ShopItems(): error listing shop items", err)
	}
	return ctx.JSON(items)
}

func (h *Handler) ShopItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrItemNotFound))
	}

	item, err := h.Shop.Get(id)
	if err != nil {
		return h.fail(ctx, "ShopItem(): error fetching shop item", err)
	}
	if item == nil {
		return ctx.Status(http.StatusNotFound).JSON(model.Fail(model.ErrItemNotFound))
	}
	return ctx.JSON(item)
}

func (h *Handler) CreateShopItem(ctx *fiber.Ctx) error {
	var data model.ShopItemAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("CreateShopItem(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrValidation))
	}

	// An omitted "enabled" key means enabled; only an explicit false disables.
	if body, parseErr := gabs.ParseJSON(ctx.Body()); parseErr == nil && !body.Exists("enabled") {
		data.Enabled = true
	}

	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.FailMsg(model.ErrValidation, err.Error()))
	}

	id, err := h.Shop.Create(&data)
	if err != nil {
		return h.fail(ctx, "CreateShopItem(): error creating shop item", err)
	}

	return ctx.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

func (h *Handler) UpdateShopItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrItemNotFound))
	}

	var data model.ShopItemAPI
	if err := ctx.BodyParser(&data); err != nil {
		h.Logger.Exception(fmt.Sprintf("UpdateShopItem(): error parsing body request: %v", err))
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.Fail(model.ErrValidation))
	}
	data.Id = id
	if err := data.Validate(); err != nil {
		return ctx.Status(http.StatusUnprocessableEntity).JSON(model.FailMsg(model.ErrValidation, err.Error()))
	}

	if err := h.Shop.Update(&data); err != nil {
		return h.fail(ctx, "UpdateShopItem(): error updating shop item", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Item updated"})
}

func (h *Handler) DeleteShopItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(model.Fail(model.ErrItemNotFound))
	}

	if err := h.Shop.Delete(id); err != nil {
		return h.fail(ctx, "DeleteShopItem(): error deleting shop item", err)
	}

	return ctx.JSON(model.BaseResponse{Success: true, Message: "Item deleted"})
}
