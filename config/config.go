// Package config 站点配置信息
package config

// Initialize 触发本包各配置文件的 init 注册
// main 包通过空引用本包完成所有配置段的装载
func Initialize() {
}
