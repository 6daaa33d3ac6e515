package Sign

import (
	"fmt"
	"net/http"
	"net/url"
	"qsigndll/bts"
	"qsigndll/models"
)

// RequestSignToken 请求 token, 返回需要发送的回调包
func (c *SignClient) RequestSignToken() []interface{} {
	if c.Identity.SignApiAddr == "" {
		return []interface{}{}
	}
	params := url.Values{
		"uin": {c.Identity.UinString()},
	}
	tag := "requestSignToken"
	env := c.requestWithRegister(tag, func() *Envelope {
		return c.callSignApi("request_token", http.MethodGet, "/request_token", params, TokenTimeout)
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

func RequestToken(Data UinParam) models.ResponseResult {
	c, err := GetSignClient(Data.Uin)
	if err != nil {
		return identityError(err)
	}
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    bts.SsoPacketList(c.RequestSignToken()),
	}
}
