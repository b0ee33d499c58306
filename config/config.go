package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"game-news/internal/logger"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Feed    FeedConfig    `yaml:"feed"`
	Archive ArchiveConfig `yaml:"archive"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeedConfig 는 공개 피드의 페이지네이션 동작을 정의한다.
type FeedConfig struct {
	// PageSize 는 피드 한 페이지에 노출할 포스트 수이다. 0 이하면 기본값 20을 사용한다.
	PageSize int `yaml:"page_size"`
}

// ArchiveConfig 는 cmd/archiver 의 기본 동작을 정의한다.
// CLI 플래그로 실행 시 개별 값을 덮어쓸 수 있다.
type ArchiveConfig struct {
	// Months 는 아카이빙/정리 기준 개월 수이다. 0 이하면 6을 사용한다.
	Months int `yaml:"months"`

	// BatchSize 는 정리 삭제 시 한 번에 지우는 행 수이다. 0 이하면 1000을 사용한다.
	BatchSize int `yaml:"batch_size"`

	// Dir 은 CSV 아카이브 파일을 저장할 디렉토리이다.
	Dir string `yaml:"dir"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c

	logger.Init(c.Logging.Level)
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// FeedPageSize 는 설정값이 없거나 잘못된 경우 기본 페이지 크기 20을 반환한다.
func FeedPageSize() int {
	c := GetConfig()
	if c.Feed.PageSize <= 0 {
		return 20
	}
	return c.Feed.PageSize
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
