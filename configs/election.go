package configs

type Election struct {
	Schedule string `env:"ELECTION_STATE_SCHEDULE" envDefault:"*/10 * * * *"`
}
