// Package config предоставляет структуры и функцию для загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	Snapshot        `yaml:"snapshot"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	SMTPConnection  `yaml:"smtp"`
	Gemini          `yaml:"gemini"`
	Admin           `yaml:"admin"`
	JWTToken        `yaml:"jwttoken"`
	Reminder        `yaml:"reminder"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Snapshot задаёт размещение JSON-снапшота коллекции членов клуба.
// Key — фиксированный ключ хранения, имя файла в каталоге Dir.
type Snapshot struct {
	Dir string `yaml:"dir" env-default:"./data"`
	Key string `yaml:"key" env-default:"gym_members_data"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Timeout     time.Duration `yaml:"timeout"`
}

// RabbitMQ структура для подключения к брокеру напоминаний.
type RabbitMQ struct {
	URL        string        `yaml:"url"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// SMTPConnection структура для отправки писем оператору.
type SMTPConnection struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Gemini задаёт доступ к генеративной модели для текстовых рекомендаций.
type Gemini struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Admin — учётные данные единственного оператора зала.
// Пароль хранится только в виде bcrypt-хэша.
type Admin struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Reminder настраивает конвейер напоминаний.
type Reminder struct {
	Interval      time.Duration `yaml:"interval" env-default:"12h"`
	OperatorEmail string        `yaml:"operator_email"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH, при ошибке завершает процесс.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
