package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Game   GameConfig
}

type ServerConfig struct {
	Address     string
	JoinBaseURL string `mapstructure:"joinBaseURL"` // QR code 加入連結的前端位址
}

type GameConfig struct {
	WordsPath       string `mapstructure:"wordsPath"`
	MinPlayers      int    `mapstructure:"minPlayers"`
	MaxPlayers      int    `mapstructure:"maxPlayers"`
	TotalRounds     int    `mapstructure:"totalRounds"`
	ClueTimeLimit   int    `mapstructure:"clueTimeLimit"`   // 毫秒
	VotingTimeLimit int    `mapstructure:"votingTimeLimit"` // 毫秒
}

// Load 讀取配置文件並套用預設值
// 配置文件不存在時使用預設值運行，環境變數可覆蓋任何設定
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")
	viper.AddConfigPath(".")

	viper.SetDefault("server.address", ":3001")
	viper.SetDefault("server.joinBaseURL", "http://localhost:3000")
	viper.SetDefault("game.wordsPath", "data/words.json")
	viper.SetDefault("game.minPlayers", 4)
	viper.SetDefault("game.maxPlayers", 8)
	viper.SetDefault("game.totalRounds", 5)
	viper.SetDefault("game.clueTimeLimit", 30000)
	viper.SetDefault("game.votingTimeLimit", 30000)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
