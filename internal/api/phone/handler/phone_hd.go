package phoneHandler

import (
	"SmartObjectAI/internal/api/phone"
	contextPkg "SmartObjectAI/pkg/context"
	"SmartObjectAI/pkg/handlerUtil"
	"SmartObjectAI/pkg/nlp"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PhoneHandler) HandleCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req phone.PhoneCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.phoneService.Command().ProcessCommand(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_phone_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PhoneHandler) HandleStatus(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.phoneService.Command().Status(c))
}

func (h *PhoneHandler) HandleConnect(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req phone.ConnectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	res, err := h.phoneService.Command().Connect(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "connect_bridge")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PhoneHandler) HandleDisconnect(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.phoneService.Command().Disconnect(c); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "disconnect_bridge")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
}

func (h *PhoneHandler) HandleListContacts(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, phone.ContactListResponse{
		Contacts: h.phoneService.Contacts().List(),
	})
}

func (h *PhoneHandler) HandleAddContact(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req phone.CreateContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.phoneService.Contacts().Add(nlp.Contact{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_contact")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, nil)
}

func (h *PhoneHandler) HandleRemoveContact(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if err := h.phoneService.Contacts().Remove(ctx.Params("name")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_contact")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
}
