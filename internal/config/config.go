package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-default:"local"`
	Processing   Processing   `yaml:"processing"`
	Verification Verification `yaml:"verification"`
}

// Processing configures the image processing service: upload handling,
// variant generation and the link to the verification service.
type Processing struct {
	HTTPServer       HTTPServer    `yaml:"http_server"`
	Database         Database      `yaml:"database"`
	Kafka            Kafka         `yaml:"kafka"`
	Storage          Storage       `yaml:"storage"`
	VerificationURL  string        `yaml:"verification_url" env:"VERIFICATION_SERVICE_URL" env-default:"http://localhost:8082"`
	AnnounceTimeout  time.Duration `yaml:"announce_timeout" env-default:"10s"`
	VariantsCount    int           `yaml:"variants_count" env:"VARIANTS_COUNT" env-default:"100"`
	MinModifications int           `yaml:"min_modifications" env-default:"100"`
	MaxFileSize      int64         `yaml:"max_file_size" env-default:"104857600"`
	ConcurrentLimit  int           `yaml:"concurrent_limit" env:"CONCURRENT_PROCESSING_LIMIT" env-default:"5"`
	QueueSize        int           `yaml:"queue_size" env-default:"64"`
}

// Verification configures the verification service. It shares the image
// storage volume with the processing service and keeps its own result
// database.
type Verification struct {
	HTTPServer       HTTPServer    `yaml:"http_server"`
	DatabasePath     string        `yaml:"database_path" env:"VERIFICATION_DB_PATH" env-default:"./storage/databases/verification.db"`
	Storage          Storage       `yaml:"storage"`
	ProcessingURL    string        `yaml:"processing_url" env:"IMAGE_PROCESSING_SERVICE_URL" env-default:"http://localhost:8081"`
	RetrievalTimeout time.Duration `yaml:"retrieval_timeout" env-default:"30s"`
	ConcurrentLimit  int           `yaml:"concurrent_limit" env:"CONCURRENT_VERIFICATION_LIMIT" env-default:"3"`
	QueueSize        int           `yaml:"queue_size" env-default:"256"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"image_processing"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env-default:"image-uploads"`
	GroupID string   `yaml:"group_id" env-default:"variant-generators"`
}

// Storage holds the filesystem layout both services work against.
type Storage struct {
	OriginalImagesDir string `yaml:"original_images_dir" env:"ORIGINAL_IMAGES_DIR" env-default:"./storage/images/original"`
	ModifiedImagesDir string `yaml:"modified_images_dir" env:"MODIFIED_IMAGES_DIR" env-default:"./storage/images/modified"`
	TempDir           string `yaml:"temp_dir" env:"TEMP_DIR" env-default:"./storage/temp"`
}

// MustLoad reads the config file named by CONFIG_PATH and dies loudly if it
// cannot.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
