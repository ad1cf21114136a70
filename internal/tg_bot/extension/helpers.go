package extension

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Une erreur est survenue, veuillez réessayer")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// CommandArguments returns the text following the command of a message.
func CommandArguments(message *tgbotapi.Message) string {
	if message == nil {
		return ""
	}
	return strings.TrimSpace(message.CommandArguments())
}

// MaxMessageLength is the longest text Telegram accepts in one message,
// in UTF-16 code units.
const MaxMessageLength = 4096

// Messages splits text into as many messages as needed to stay under
// MaxMessageLength, cutting between lines when possible.
func Messages(chatID int64, text string) []tgbotapi.Chattable {
	var messages []tgbotapi.Chattable
	for _, chunk := range splitText(text, MaxMessageLength) {
		messages = append(messages, tgbotapi.NewMessage(chatID, chunk))
	}
	return messages
}

func splitText(text string, limit int) []string {
	var chunks []string
	var current strings.Builder
	currentLength := 0

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		currentLength = 0
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		length := textLength(line)

		if currentLength+length > limit {
			flush()
		}

		for length > limit {
			head, rest := cutAt(line, limit)
			chunks = append(chunks, head)
			line = rest
			length = textLength(line)
		}

		current.WriteString(line)
		currentLength += length
	}
	flush()

	return chunks
}

// textLength counts UTF-16 code units, the unit of Telegram's limit.
func textLength(text string) int {
	length := 0
	for _, r := range text {
		if r >= 0x10000 {
			length += 2
		} else {
			length++
		}
	}
	return length
}

func cutAt(text string, limit int) (string, string) {
	length := 0
	for i, r := range text {
		size := 1
		if r >= 0x10000 {
			size = 2
		}
		if length+size > limit {
			return text[:i], text[i:]
		}
		length += size
	}
	return text, ""
}
