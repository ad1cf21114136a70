package configs

import "time"

type Mailchimp struct {
	APIKey  string `env:"MAILCHIMP_API_KEY,notEmpty"`
	BaseURL string `env:"MAILCHIMP_BASE_URL" envDefault:"https://us1.api.mailchimp.com/3.0"`
	ListID  string `env:"MAILCHIMP_MEMBER_LIST_ID,notEmpty"`

	// Interest key -> Mailchimp interest id, e.g. "referent:8a1b2c,deputy:3d4e5f".
	InterestIDs map[string]string `env:"MAILCHIMP_INTEREST_IDS" envSeparator:"," envKeyValSeparator:":"`

	Schedule        string        `env:"CONTACT_SYNC_SCHEDULE" envDefault:"*/15 * * * *"`
	BatchSize       int           `env:"CONTACT_SYNC_BATCH_SIZE" envDefault:"500"`
	InitialLookback time.Duration `env:"CONTACT_SYNC_INITIAL_LOOKBACK" envDefault:"24h"`
}
