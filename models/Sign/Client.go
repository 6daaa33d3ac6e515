package Sign

import (
	"fmt"
	"net/url"
	"qsigndll/baseinfo"
	"qsigndll/comm"
	"qsigndll/models"
	"time"

	log "github.com/sirupsen/logrus"
)

// 各接口超时时间
var (
	EnergyTimeout   = 20 * time.Second
	SignTimeout     = 20 * time.Second
	TokenTimeout    = 10 * time.Second
	SubmitTimeout   = 10 * time.Second
	RegisterTimeout = 20 * time.Second
)

// MaxAttempts 单次调用最多请求签名api的次数, 两次之间穿插一次注册
var MaxAttempts = 2

// Hooks 外层客户端提供的能力
type Hooks interface {
	// Emit 输出诊断信息
	Emit(level log.Level, msg string)
	// DispatchSsoPackets 发送签名api要求的回调包
	DispatchSsoPackets(list []interface{})
	// RequestToken 异步请求 token 并发送其回调包
	RequestToken()
}

// PacketBuilder 用签名结果组包
type PacketBuilder interface {
	GenerateT544Packet(cmd string, sign []byte) []byte
	GenerateSignPacket(sign string, token string, extra string) []byte
}

// SignClient 签名api客户端, 只读取 Identity, 可并发使用
type SignClient struct {
	Identity *baseinfo.Identity
	Hooks    Hooks
	Packer   PacketBuilder
	Proxy    models.ProxyInfo
}

func NewSignClient(identity *baseinfo.Identity, hooks Hooks, packer PacketBuilder) *SignClient {
	return &SignClient{
		Identity: identity,
		Hooks:    hooks,
		Packer:   packer,
	}
}

func (c *SignClient) emit(level log.Level, format string, args ...interface{}) {
	c.Hooks.Emit(level, fmt.Sprintf(format, args...))
}

// callSignApi 请求签名api, path 为空时直接使用签名地址. 不会返回错误, 失败时 code 为 -1
func (c *SignClient) callSignApi(api string, method string, path string, params url.Values, timeout time.Duration) *Envelope {
	start := time.Now()
	env := c.doSignApi(method, path, params, timeout)
	comm.ObserveSignApi(api, env.Code, time.Since(start))
	return env
}

func (c *SignClient) doSignApi(method string, path string, params url.Values, timeout time.Duration) *Envelope {
	Url := c.Identity.SignApiAddr
	if path != "" {
		var err error
		Url, err = comm.ReplaceUrlPath(c.Identity.SignApiAddr, path)
		if err != nil {
			return FailureEnvelope(err)
		}
	}
	body, err := comm.SignHttpDo(Url, method, params, comm.GenSignApiUA(c.Identity.GetOsRelease()), timeout, c.Proxy)
	if err != nil {
		return FailureEnvelope(err)
	}
	return ParseEnvelope(body)
}

// requestWithRegister 请求签名api, 返回未注册时注册并重试, 最多请求 MaxAttempts 次
func (c *SignClient) requestWithRegister(tag string, call func() *Envelope) *Envelope {
	for attempt := 1; ; attempt++ {
		env := call()
		c.emit(log.DebugLevel, "%s result: %s", tag, env)
		if env.Outcome() != OutcomeUnregistered {
			return env
		}
		if attempt >= MaxAttempts {
			c.emit(log.ErrorLevel, "签名api注册后仍然返回未注册：%s result: %s", tag, env)
			return env
		}
		if !c.Register() {
			return env
		}
	}
}

// reportFailure 非成功结果的诊断. 未注册时注册失败已经输出过
func (c *SignClient) reportFailure(tag string, env *Envelope) {
	switch {
	case env.Outcome() == OutcomeUnregistered:
	case env.Code == 1:
		c.emit(log.WarnLevel, "签名api拒绝请求：%s result: %s", tag, env)
	default:
		c.emit(log.ErrorLevel, "签名api异常：%s result: %s", tag, env)
	}
}
