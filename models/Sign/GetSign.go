package Sign

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"qsigndll/models"
	"strconv"
	"strings"
)

// GetSign 请求发包签名并组签名包, 未配置签名地址或缺少 qimei/qua 时返回空
func (c *SignClient) GetSign(cmd string, seq uint32, body []byte) []byte {
	params := []byte{}
	if c.Identity.SignApiAddr == "" {
		return params
	}
	if c.Identity.Device.GetQImei() == "" || c.Identity.Apk.Qua == "" {
		return params
	}
	form := url.Values{
		"qua":    {c.Identity.Apk.Qua},
		"uin":    {c.Identity.UinString()},
		"cmd":    {cmd},
		"seq":    {strconv.FormatUint(uint64(seq), 10)},
		"buffer": {hex.EncodeToString(body)},
	}
	tag := fmt.Sprintf("getSign %s", cmd)
	env := c.requestWithRegister(tag, func() *Envelope {
		return c.callSignApi("sign", http.MethodPost, "", form, SignTimeout)
	})
	if env.Outcome() != OutcomeSuccess {
		c.reportFailure(tag, env)
		return params
	}
	fields, err := env.SignFields()
	if err != nil {
		c.reportFailure(fmt.Sprintf("%s %v", tag, err), env)
		return params
	}
	params = c.Packer.GenerateSignPacket(fields.Sign, fields.Token, fields.Extra)
	if len(fields.Callbacks) < 1 && strings.Contains(cmd, "wtlogin") {
		go c.Hooks.RequestToken()
	} else {
		c.Hooks.DispatchSsoPackets(fields.Callbacks)
	}
	return params
}

func GetSignPacket(Data GetSignParam) models.ResponseResult {
	body, err := hex.DecodeString(Data.Body)
	if err != nil {
		return models.ResponseResult{
			Code:    -8,
			Success: false,
			Message: fmt.Sprintf("body不是有效的hex：%v", err.Error()),
			Data:    nil,
		}
	}
	c, err := GetSignClient(Data.Uin)
	if err != nil {
		return identityError(err)
	}
	packet := c.GetSign(Data.Cmd, Data.Seq, body)
	return models.ResponseResult{
		Code:    0,
		Success: len(packet) > 0,
		Message: "成功",
		Data:    hex.EncodeToString(packet),
	}
}
