package Sign

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"qsigndll/bts"
	"qsigndll/models"
	"strconv"
)

// SubmitSsoPacket 提交回调包的发送结果, 返回新的回调包
func (c *SignClient) SubmitSsoPacket(cmd string, callbackId int64, body []byte) []interface{} {
	if c.Identity.SignApiAddr == "" {
		return []interface{}{}
	}
	id := strconv.FormatInt(callbackId, 10)
	params := url.Values{
		"ver":         {c.Identity.Apk.Ver},
		"qua":         {c.Identity.Apk.Qua},
		"uin":         {c.Identity.UinString()},
		"cmd":         {cmd},
		"callbackId":  {id},
		"callback_id": {id},
		"androidId":   {c.Identity.Device.AndroidId},
		"qimei36":     {c.Identity.Device.GetQImei()},
		"buffer":      {hex.EncodeToString(body)},
		"guid":        {c.Identity.Device.GuidHex()},
	}
	tag := fmt.Sprintf("submitSsoPacket %s", cmd)
	env := c.requestWithRegister(tag, func() *Envelope {
		return c.callSignApi("submit", http.MethodGet, "/submit", params, SubmitTimeout)
	})
	if env.Outcome() != OutcomeSuccess {
		c.reportFailure(tag, env)
		return []interface{}{}
	}
	list, err := env.CallbackList()
	if err != nil {
		c.reportFailure(fmt.Sprintf("%s %v", tag, err), env)
		return []interface{}{}
	}
	return list
}

func Submit(Data SubmitParam) models.ResponseResult {
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
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    bts.SsoPacketList(c.SubmitSsoPacket(Data.Cmd, Data.CallbackId, body)),
	}
}
