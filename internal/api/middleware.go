package api

const (
	languageCookieName = "vytal_lang"
	flashCookieName    = "vytal_flash"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
	contextCSRFKey     = "csrf"
)
