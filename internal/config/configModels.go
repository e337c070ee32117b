package config

import "time"

type Config struct {
	Env            string           `yaml:"env" env:"ENV" env-default:"local"`
	HttpServer     HttpServerConfig `yaml:"httpServer" env-required:"true"`
	DBConfig       DBConfig         `yaml:"db"`
	SourcesConfig  SourcesConfig    `yaml:"sources"`
	BotConfig      BotConfig        `yaml:"bot"`
	ConfigFilePath string           `yaml:"configFilePath" env:"CONFIG_FILEPATH" env-default:""`
	ConfigFileName string           `yaml:"configFileName" env:"CONFIG_FILENAME" env-default:""`
	configPath     string
}

type HttpServerConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
	Secret  string        `yaml:"secret" env:"HTTP_SECRET" env-default:"secret"`
}

type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"postgres"`
	User     string `yaml:"user" env:"DB_USER" env-default:"user"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"password"`
}

// SourcesConfig собирает настройки всех внешних провайдеров событий.
type SourcesConfig struct {
	Timeout  time.Duration `yaml:"timeout" env:"SOURCES_TIMEOUT" env-default:"15s"`
	CacheTTL time.Duration `yaml:"cacheTTL" env:"SOURCES_CACHE_TTL" env-default:"45m"` // free tier rate limits
	PageSize int           `yaml:"pageSize" env:"SOURCES_PAGE_SIZE" env-default:"30"`

	Ticketmaster TicketmasterConfig `yaml:"ticketmaster"`
	KulturSanat  KulturSanatConfig  `yaml:"kulturSanat"`
	SportsDB     SportsDBConfig     `yaml:"sportsDB"`
	Biletino     BiletinoConfig     `yaml:"biletino"`
}

// TicketmasterConfig — Ticketmaster Discovery API v2 (5000 запросов/день бесплатно).
type TicketmasterConfig struct {
	BaseURL     string `yaml:"baseURL" env:"TM_BASE_URL" env-default:"https://app.ticketmaster.com/discovery/v2/events.json"`
	APIKey      string `yaml:"apiKey" env:"TICKETMASTER_API_KEY" env-default:""`
	CountryCode string `yaml:"countryCode" env-default:"TR"`
	DefaultCity string `yaml:"defaultCity" env-default:"Istanbul"`
}

type KulturSanatConfig struct {
	BaseURL string `yaml:"baseURL" env:"KULTUR_BASE_URL" env-default:"https://backend.kultursanat.istanbul/api/etkinlikler"`
}

type SportsDBConfig struct {
	BaseURL  string `yaml:"baseURL" env:"SPORTSDB_BASE_URL" env-default:"https://www.thesportsdb.com/api/v1/json/3"`
	LeagueID string `yaml:"leagueID" env-default:"4339"` // Süper Lig
}

type BiletinoConfig struct {
	BaseURL string `yaml:"baseURL" env:"BILETINO_BASE_URL" env-default:"https://api.biletino.com/v1/events/search"`
}

// BotConfig настраивает телеграм-уведомления о новых подписчиках листа ожидания.
type BotConfig struct {
	Enabled       bool   `yaml:"enabled" env:"TGBOT_ENABLED" env-default:"false"`
	TgbotApiToken string `yaml:"tgbot_apitoken" env:"TGBOT_APITOKEN" env-default:""`
	AdminChatID   int64  `yaml:"adminChatID" env:"TGBOT_ADMIN_CHAT_ID" env-default:"0"`
}
