package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/models"
	"github.com/vytalhealth/vytal/internal/services"
	"go.uber.org/zap"
)

const (
	prescriptionTabUpload     = "upload"
	prescriptionTabSimplified = "simplified"

	prescriptionUploadPath     = "/prescriptions?tab=upload"
	prescriptionSimplifiedPath = "/prescriptions?tab=simplified"

	prescriptionFileField = "file"
)

func prescriptionTab(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), prescriptionTabSimplified) {
		return prescriptionTabSimplified
	}
	return prescriptionTabUpload
}

func (handler *Handler) ShowPrescriptions(c *fiber.Ctx) error {
	tab := prescriptionTab(c.Query("tab"))

	prescriptions := []models.Prescription{}
	if tab == prescriptionTabSimplified {
		loaded, err := handler.prescriptions.List(c.UserContext())
		if err != nil {
			handler.logger.Warn("load prescriptions failed", zap.Error(err))
		} else {
			prescriptions = loaded
		}
	}

	return handler.render(c, "prescriptions", fiber.Map{
		"Title":         localizedPageTitle(currentMessages(c), "prescriptions.title", "Prescriptions"),
		"Tab":           tab,
		"Prescriptions": prescriptions,
		"Uploading":     handler.prescriptions.InFlight(),
	})
}

func (handler *Handler) UploadPrescription(c *fiber.Ctx) error {
	upload := services.PrescriptionUpload{}
	if header, err := c.FormFile(prescriptionFileField); err == nil && header != nil {
		file, err := header.Open()
		if err != nil {
			handler.logger.Warn("open uploaded prescription failed", zap.Error(err))
			return handler.uploadFailed(c, err)
		}
		defer file.Close()
		upload = services.PrescriptionUpload{Filename: header.Filename, Content: file}
	}

	prescriptions, err := handler.prescriptions.Upload(c.UserContext(), upload)
	switch {
	case errors.Is(err, services.ErrNoFile):
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusBadRequest, translateMessage(currentMessages(c), "prescriptions.notice.no_file_body"))
		}
		handler.flashNotice(c, noticeError, "prescriptions.notice.no_file_title", "prescriptions.notice.no_file_body")
		return c.Redirect(prescriptionUploadPath, fiber.StatusSeeOther)
	case errors.Is(err, services.ErrUploadInProgress):
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusConflict, translateMessage(currentMessages(c), "prescriptions.notice.busy_body"))
		}
		handler.flashNotice(c, noticeInfo, "prescriptions.notice.busy_title", "prescriptions.notice.busy_body")
		return c.Redirect(prescriptionUploadPath, fiber.StatusSeeOther)
	case err != nil:
		return handler.uploadFailed(c, err)
	}

	handler.flashNotice(c, noticeSuccess, "prescriptions.notice.success_title", "prescriptions.notice.success_body")
	return redirectOrJSON(c, prescriptionSimplifiedPath, fiber.Map{"prescriptions": prescriptions})
}

func (handler *Handler) uploadFailed(c *fiber.Ctx, err error) error {
	message := services.UploadFailureMessage(err)
	if acceptsJSON(c) {
		status := fiber.StatusBadGateway
		if errors.Is(err, services.ErrListUpdate) {
			status = fiber.StatusInternalServerError
		}
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{
		Kind:  noticeError,
		Title: translateMessage(currentMessages(c), "prescriptions.notice.failure_title"),
		Body:  message,
	})
	return c.Redirect(prescriptionUploadPath, fiber.StatusSeeOther)
}
