package Sign

import (
	"net/http"
	"net/url"
	"qsigndll/models"

	log "github.com/sirupsen/logrus"
)

// Register 向签名api注册当前身份, 不重试
func (c *SignClient) Register() bool {
	if c.Identity.SignApiAddr == "" {
		return false
	}
	params := url.Values{
		"uin":        {c.Identity.UinString()},
		"android_id": {c.Identity.Device.AndroidId},
		"qimei36":    {c.Identity.Device.GetQImei()},
		"guid":       {c.Identity.Device.GuidHex()},
	}
	env := c.callSignApi("register", http.MethodGet, "/register", params, RegisterTimeout)
	c.emit(log.DebugLevel, "register result: %s", env)
	if env.Code == 0 {
		return true
	}
	c.emit(log.ErrorLevel, "签名api注册异常：result: %s", env)
	return false
}

func RegisterIdentity(Data UinParam) models.ResponseResult {
	c, err := GetSignClient(Data.Uin)
	if err != nil {
		return identityError(err)
	}
	ok := c.Register()
	Message := "成功"
	if !ok {
		Message = "注册失败"
	}
	return models.ResponseResult{
		Code:    0,
		Success: ok,
		Message: Message,
		Data:    ok,
	}
}
