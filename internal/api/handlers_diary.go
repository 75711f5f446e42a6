package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/services"
	"go.uber.org/zap"
)

const (
	diaryTabNew     = "new"
	diaryTabHistory = "history"

	diaryHistoryPath = "/diary?tab=history"
)

func diaryTab(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), diaryTabHistory) {
		return diaryTabHistory
	}
	return diaryTabNew
}

func (handler *Handler) ShowDiary(c *fiber.Ctx) error {
	tab := diaryTab(c.Query("tab"))
	if tab == diaryTabHistory {
		return handler.renderDiaryHistory(c)
	}
	return handler.renderDiaryForm(c, services.DefaultDiaryForm(handler.now().In(handler.location)))
}

func (handler *Handler) renderDiaryHistory(c *fiber.Ctx) error {
	entries, err := handler.diary.Entries(c.UserContext())
	if err != nil {
		handler.logger.Warn("load diary history failed", zap.Error(err))
		entries = nil
	}

	return handler.render(c, "diary", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "diary.title", "Health diary"),
		"Tab":   diaryTabHistory,
		"Cards": services.BuildHistoryCards(entries),
	})
}

func (handler *Handler) renderDiaryForm(c *fiber.Ctx, form services.DiaryFormInput) error {
	return handler.render(c, "diary", fiber.Map{
		"Title":       localizedPageTitle(currentMessages(c), "diary.title", "Health diary"),
		"Tab":         diaryTabNew,
		"Form":        form,
		"MoodOptions": moodOptions(form.Mood),
	})
}

// SubmitDiaryEntry creates an entry. A failed submission is logged and the
// form comes back with the submitted values and no notice.
func (handler *Handler) SubmitDiaryEntry(c *fiber.Ctx) error {
	input := services.DiaryFormInput{}
	if err := c.BodyParser(&input); err != nil {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		return c.Redirect("/diary?tab=new", fiber.StatusSeeOther)
	}

	created, err := handler.diary.Submit(c.UserContext(), input)
	if err != nil {
		handler.logger.Warn("submit diary entry failed", zap.Error(err))
		if acceptsJSON(c) {
			status := fiber.StatusBadGateway
			if errors.Is(err, services.ErrMissingDateTime) {
				status = fiber.StatusBadRequest
			}
			return apiError(c, status, err.Error())
		}
		return handler.renderDiaryForm(c, input)
	}

	handler.flashNotice(c, noticeSuccess, "diary.notice.saved_title", "diary.notice.saved_body")
	return redirectOrJSON(c, diaryHistoryPath, fiber.Map{"entry": created})
}

// DiaryEntriesJSON returns the cached diary list.
func (handler *Handler) DiaryEntriesJSON(c *fiber.Ctx) error {
	entries, err := handler.diary.Entries(c.UserContext())
	if err != nil {
		handler.logger.Warn("load diary entries failed", zap.Error(err))
		return apiError(c, fiber.StatusBadGateway, "failed to load diary entries")
	}
	return c.JSON(entries)
}
