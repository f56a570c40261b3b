package config

// Storage 本地购物车槽位的持久化配置
// backend 可选 file / redis，file 为默认
type Storage struct {
	Backend string `json:"backend" yaml:"backend"`
	Dir     string `json:"dir" yaml:"dir"`
}
