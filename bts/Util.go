package bts

import (
	"encoding/json"

	"github.com/samber/lo"
)

// SsoPacket 签名api要求发送的回调包
type SsoPacket struct {
	Cmd        string `json:"cmd"`
	Body       string `json:"body"`
	CallbackId int64  `json:"callbackId"`
}

func GetSsoPacket(Data interface{}) SsoPacket {
	var Buff SsoPacket
	result, err := json.Marshal(&Data)
	if err != nil {
		return SsoPacket{}
	}
	_ = json.Unmarshal(result, &Buff)
	return Buff
}

// SsoPacketList 转换回调包列表, 丢弃没有 cmd 的项
func SsoPacketList(list []interface{}) []SsoPacket {
	return lo.FilterMap(list, func(item interface{}, _ int) (SsoPacket, bool) {
		packet := GetSsoPacket(item)
		return packet, packet.Cmd != ""
	})
}
