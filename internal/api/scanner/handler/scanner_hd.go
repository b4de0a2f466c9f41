package scannerHandler

import (
	"SmartObjectAI/internal/api/scanner"
	contextPkg "SmartObjectAI/pkg/context"
	"SmartObjectAI/pkg/handlerUtil"
	jwtPkg "SmartObjectAI/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ScannerHandler) HandleDetect(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	imageDataURL, err := h.imageFromRequest(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_image")
	}

	res, err := h.scannerService.Detect().DetectObject(c, userData.ID, imageDataURL)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "detect_object")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

// imageFromRequest accepts either a multipart "image" file or a JSON
// body carrying a base64 data URL.
func (h *ScannerHandler) imageFromRequest(ctx *fiber.Ctx) (string, error) {
	file, err := ctx.FormFile("image")
	if err == nil {
		if err := h.utils.ValidateImageFile(file); err != nil {
			return "", scanner.ErrInvalidImagePayload
		}

		src, err := file.Open()
		if err != nil {
			return "", scanner.ErrInvalidImagePayload
		}
		defer src.Close()

		encoded, err := h.utils.ConvertFileToBase64(src)
		if err != nil {
			return "", scanner.ErrInvalidImagePayload
		}

		return "data:image/jpeg;base64," + encoded, nil
	}

	var req scanner.DetectObjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return "", scanner.ErrNoImagePayload
	}

	if err := h.validator.Struct(&req); err != nil {
		return "", scanner.ErrNoImagePayload
	}

	return req.Image, nil
}

func (h *ScannerHandler) HandleListCategories(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.scannerService.Detect().Categories())
}

func (h *ScannerHandler) HandleGetCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	res, err := h.scannerService.Detect().Category(ctx.Params("tag"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_category")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
}

func (h *ScannerHandler) HandleExecuteCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req scanner.ExecuteCommandRequest

	// A multipart "audio" upload is transcribed first, otherwise the
	// command arrives as JSON text.
	if file, ferr := ctx.FormFile("audio"); ferr == nil {
		req.Object = ctx.FormValue("object")

		text, err := h.scannerService.Command().TranscribeCommand(c, file)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "transcribe_command")
		}
		req.Command = text
	} else {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.scannerService.Command().ExecuteCommand(c, userData.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "execute_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ScannerHandler) HandleSpeak(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	data, err := h.scannerService.Command().Speak(c, req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "synthesize_speech")
	}

	ctx.Set(fiber.HeaderContentType, "audio/mpeg")
	return ctx.Status(fiber.StatusOK).Send(data)
}
