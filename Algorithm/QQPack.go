package Algorithm

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"qsigndll/baseinfo"

	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protowire"
)

// T544 标签
var TlvT544 = uint16(0x544)

// PackTlv 组TLV: 2字节标签 + 2字节长度 + 内容
func PackTlv(tag uint16, body []byte) []byte {
	retBuffer := new(bytes.Buffer)
	binary.Write(retBuffer, binary.BigEndian, tag)               // 标签
	binary.Write(retBuffer, binary.BigEndian, uint16(len(body))) // 包长
	retBuffer.Write(body)
	return retBuffer.Bytes()
}

// PackT544 签名为空时同样组包
func PackT544(sign []byte) []byte {
	return PackTlv(TlvT544, sign)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// PackSsoSecureInfo 组 sso 安全信息(sec_info)
func PackSsoSecureInfo(qimei string, uin int64, sign []byte, token []byte, extra []byte) []byte {
	var secInfo []byte
	secInfo = appendBytesField(secInfo, 1, sign)
	secInfo = appendBytesField(secInfo, 2, token)
	secInfo = appendBytesField(secInfo, 3, extra)

	var b []byte
	b = appendVarintField(b, 9, 1)
	b = appendBytesField(b, 12, []byte(qimei))
	b = appendVarintField(b, 14, 0)
	b = appendVarintField(b, 16, uint64(uin))
	b = appendVarintField(b, 18, 0)
	b = appendVarintField(b, 19, 1)
	b = appendVarintField(b, 20, 1)
	b = appendVarintField(b, 21, 0)
	b = appendBytesField(b, 24, secInfo)
	b = appendVarintField(b, 28, 3)
	return b
}

// SignPacker 按身份组签名包
type SignPacker struct {
	Identity *baseinfo.Identity
}

func (p SignPacker) GenerateT544Packet(cmd string, sign []byte) []byte {
	return PackT544(sign)
}

func (p SignPacker) GenerateSignPacket(sign string, token string, extra string) []byte {
	return PackSsoSecureInfo(p.Identity.Device.GetQImei(), p.Identity.Uin, decodeHexField("sign", sign), decodeHexField("token", token), decodeHexField("extra", extra))
}

func decodeHexField(name string, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Warnf("签名包字段 %s 不是有效的hex: %v", name, err)
		return []byte{}
	}
	return b
}
