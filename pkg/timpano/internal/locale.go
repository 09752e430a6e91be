package internal

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for the strings the chrome renders.
const (
	MsgBack       = "back"
	MsgEmptyStack = "empty_stack"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func initBundle() {
	bundle = i18n.NewBundle(language.English)

	bundle.AddMessages(language.English,
		&i18n.Message{ID: MsgBack, Other: "Back"},
		&i18n.Message{ID: MsgEmptyStack, Other: "Nothing to show"},
	)
	bundle.AddMessages(language.Italian,
		&i18n.Message{ID: MsgBack, Other: "Indietro"},
		&i18n.Message{ID: MsgEmptyStack, Other: "Niente da mostrare"},
	)

	localizer = i18n.NewLocalizer(bundle, language.English.String())
}

// SetLocale selects the language used for chrome strings.
// Falls back to English for tags with no translations.
func SetLocale(tag string) {
	if bundle == nil {
		initBundle()
	}
	if tag == "" {
		tag = language.English.String()
	}
	localizer = i18n.NewLocalizer(bundle, tag, language.English.String())
}

// Localize returns the translated string for a message ID, or the ID
// itself when no translation exists.
func Localize(messageID string) string {
	if localizer == nil {
		initBundle()
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
