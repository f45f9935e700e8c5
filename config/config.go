package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App            `json:"app" yaml:"app"`
	Server    *Server         `json:"server" yaml:"server"`
	MySQL     *MySQL          `json:"mysql" yaml:"mysql"`
	Redis     *Redis          `json:"redis" yaml:"redis"`
	Jwt       *Jwt            `json:"jwt" yaml:"jwt"`
	Webhook   *Webhook        `json:"webhook" yaml:"webhook"`
	Media     *Media          `json:"media" yaml:"media"`
	Minio     *MinioConfig    `json:"minio" yaml:"minio"`
	Oss       *OssConfig      `json:"oss" yaml:"oss"`
	RocketMQ  *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Reconcile *Reconcile      `json:"reconcile" yaml:"reconcile"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New loads .env (if any) and then the yaml file. Secrets in the environment win
// over the values in the file.
func New(filename string) *Config {
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return conf
}

// Parse decodes yaml content, fills missing sections with defaults and applies env overrides.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	conf.setDefaults()
	conf.applyEnv()

	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Webhook == nil {
		c.Webhook = &Webhook{}
	}
	if c.Media == nil {
		c.Media = &Media{}
	}
	if c.Media.Driver == "" {
		c.Media.Driver = MediaDriverMinio
	}
	if c.Media.UploadExpire == 0 {
		c.Media.UploadExpire = 900
	}
	if c.Minio == nil {
		c.Minio = &MinioConfig{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.RocketMQ.Topic == "" {
		c.RocketMQ.Topic = "spotlight_notifications"
	}
	if c.Reconcile == nil {
		c.Reconcile = &Reconcile{Spec: "@every 30m"}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("CLERK_WEBHOOK_SECRET"); v != "" {
		c.Webhook.ClerkSecret = v
	}
	if v := os.Getenv("CLERK_JWT_KEY"); v != "" {
		c.Jwt.PublicKey = v
	}
	if v := os.Getenv("MEDIA_ACCESS_KEY"); v != "" {
		c.Minio.AccessKeyID = v
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("MEDIA_SECRET_KEY"); v != "" {
		c.Minio.AccessKeySecret = v
		c.Oss.AccessKeySecret = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
