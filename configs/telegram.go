package configs

type Telegram struct {
	Token         string  `env:"TELEGRAM_BOT_TOKEN"`
	ChatID        int64   `env:"TELEGRAM_ANNOUNCEMENTS_CHAT_ID"`
	UpdateTimeout int     `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
	OperatorIDs   []int64 `env:"TELEGRAM_OPERATOR_IDS" envSeparator:","`
}

func (c Telegram) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}
