package commands

import (
	"fmt"
	"strings"

	"engagement_platform/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

type startCommand struct {
	appConfig configs.App
}

func NewStartCommand(appConfig configs.App) Command {
	return &startCommand{
		appConfig: appConfig,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(arguments string, chatID int64) []tgbotapi.Chattable {
	parseMode := tgbotapi.ModeMarkdownV2

	messageText := tgbotapi.EscapeText(parseMode, fmt.Sprintf(`
Bonjour ! Je suis le bot des élections de %s. Voici ce que je sais faire :

/open_elections - liste les élections ouvertes.
/election <uuid> - affiche l'état et les résultats d'une élection.

Toutes les commandes sont disponibles depuis le bouton Menu.
`, c.appConfig.Name))
	messageText = strings.Replace(messageText, "Menu", "*Menu*", -1)
	message := tgbotapi.NewMessage(chatID, messageText)
	message.ParseMode = parseMode
	return []tgbotapi.Chattable{message}
}
