package models

type ResponseResult struct {
	Code    int64
	Success bool
	Message string
	Data    interface{}
	Debug   string
}

// ProxyInfo 代理信息, ProxyIp 为空或 "string" 时不使用代理
type ProxyInfo struct {
	ProxyIp       string
	ProxyUser     string
	ProxyPassword string
}

// Enabled 是否配置了代理
func (p ProxyInfo) Enabled() bool {
	return p.ProxyIp != "" && p.ProxyIp != "string"
}
