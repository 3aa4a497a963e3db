package config

import (
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string   `yaml:"addr"`
	BaseURL        string   `yaml:"base_url" validate:"required,url"` // canonical origin used for share links and RSS
	SiteName       string   `yaml:"site_name" validate:"required"`
	SiteTagline    string   `yaml:"site_tagline"`
	ShareHashtags  []string `yaml:"share_hashtags"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	MaxFilesPerPost       int      `yaml:"max_files_per_post" validate:"min=0"`
	MaxAttachmentSize     int64    `yaml:"max_attachment_size" validate:"min=0"` // bytes, per file
	MaxImageWidth         int      `yaml:"max_image_width" validate:"min=0"`     // larger images get downscaled
	JpegQuality           int      `yaml:"jpeg_quality" validate:"min=0,max=100"`
	AllowedImageMimeTypes []string `yaml:"allowed_image_mime_types"`

	MediaPath      string `yaml:"media_path"`       // filesystem root of the media store
	MediaURLPrefix string `yaml:"media_url_prefix"` // public URL prefix media keys are served under
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := Config{public, private}
	cfg.applyDefaults()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg.Public); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &cfg
}

func (c *Config) applyDefaults() {
	p := &c.Public
	if p.Addr == "" {
		p.Addr = ":8080"
	}
	if p.MaxFilesPerPost == 0 {
		p.MaxFilesPerPost = 5
	}
	if p.MaxAttachmentSize == 0 {
		p.MaxAttachmentSize = 5 << 20
	}
	if p.MaxImageWidth == 0 {
		p.MaxImageWidth = 800
	}
	if p.JpegQuality == 0 {
		p.JpegQuality = 90
	}
	if len(p.AllowedImageMimeTypes) == 0 {
		p.AllowedImageMimeTypes = []string{"image/jpeg", "image/png", "image/gif"}
	}
	if p.MediaPath == "" {
		p.MediaPath = "media"
	}
	if p.MediaURLPrefix == "" {
		p.MediaURLPrefix = "/media"
	}
}
