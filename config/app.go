package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

// Api 远端商城 API 的访问配置
type Api struct {
	BaseUrl string `json:"base_url" yaml:"base_url"`
	Timeout int    `json:"timeout" yaml:"timeout"` // 秒，0 表示默认 15s
}
