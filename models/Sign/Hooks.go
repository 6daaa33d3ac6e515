package Sign

import (
	"qsigndll/baseinfo"
	"qsigndll/comm"

	log "github.com/sirupsen/logrus"
)

// QueueHooks 诊断写日志, 回调包写入 redis 队列等待外层客户端取走
type QueueHooks struct {
	Client *SignClient
}

func (h *QueueHooks) Emit(level log.Level, msg string) {
	log.WithField("uin", h.Client.Identity.Uin).Log(level, msg)
}

func (h *QueueHooks) DispatchSsoPackets(list []interface{}) {
	if len(list) == 0 {
		return
	}
	if err := comm.PushSsoPackets(h.Client.Identity.Uin, list); err != nil {
		log.WithField("uin", h.Client.Identity.Uin).Errorf("回调包写入队列失败: %v", err)
	}
}

func (h *QueueHooks) RequestToken() {
	h.DispatchSsoPackets(h.Client.RequestSignToken())
}

// NewQueueSignClient 创建使用 redis 回调队列的签名客户端
func NewQueueSignClient(identity *baseinfo.Identity, packer PacketBuilder) *SignClient {
	c := NewSignClient(identity, nil, packer)
	c.Hooks = &QueueHooks{Client: c}
	c.Proxy = comm.GetSignProxy()
	return c
}
