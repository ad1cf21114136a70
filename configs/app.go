package configs

type App struct {
	Environment string `env:"ENVIRONMENT,notEmpty"`
	Name        string `env:"APP_NAME" envDefault:"engagement_platform"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
