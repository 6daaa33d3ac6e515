package controllers

import (
	"fmt"
	"qsigndll/models"
	"qsigndll/models/Sign"
)

// 签名模块 通过签名api获取 T544/sso 签名(签名身份需先 SetIdentity)
type SignController struct {
	BaseController
}

// @Summary 设置签名身份
// @Param	body		body 	Sign.SetIdentityParam	true		"Guid 留空自动生成, SignApiAddr 留空使用默认配置"
// @Success 200
// @router /SetIdentity [post]
func (c *SignController) SetIdentity() {
	var ParamData Sign.SetIdentityParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.SetIdentity(ParamData))
}

// @Summary 获取签名身份
// @Param	uin		query 	int64	true		"uin"
// @Success 200
// @router /GetIdentity [get]
func (c *SignController) GetIdentity() {
	uin, err := c.GetInt64("uin")
	if err != nil {
		c.serve(models.ResponseResult{
			Code:    -8,
			Success: false,
			Message: fmt.Sprintf("系统异常：%v", err.Error()),
			Data:    nil,
		})
		return
	}
	c.serve(Sign.GetIdentity(uin))
}

// @Summary 删除签名身份
// @Param	body		body 	Sign.UinParam	true		""
// @Success 200
// @router /DelIdentity [post]
func (c *SignController) DelIdentity() {
	var ParamData Sign.UinParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.DelIdentity(ParamData.Uin))
}

// @Summary 获取T544(energy)签名
// @Param	body		body 	Sign.EnergyParam	true		""
// @Success 200
// @router /Energy [post]
func (c *SignController) Energy() {
	var ParamData Sign.EnergyParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.Energy(ParamData))
}

// @Summary 批量获取T544(energy)签名
// @Param	body		body 	Sign.EnergyBatchParam	true		""
// @Success 200
// @router /EnergyBatch [post]
func (c *SignController) EnergyBatch() {
	var ParamData Sign.EnergyBatchParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.EnergyBatch(ParamData))
}

// @Summary 获取发包签名
// @Param	body		body 	Sign.GetSignParam	true		"Body 为hex"
// @Success 200
// @router /GetSign [post]
func (c *SignController) GetSign() {
	var ParamData Sign.GetSignParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.GetSignPacket(ParamData))
}

// @Summary 请求token
// @Param	body		body 	Sign.UinParam	true		""
// @Success 200
// @router /RequestToken [post]
func (c *SignController) RequestToken() {
	var ParamData Sign.UinParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.RequestToken(ParamData))
}

// @Summary 提交回调包结果
// @Param	body		body 	Sign.SubmitParam	true		"Body 为hex"
// @Success 200
// @router /Submit [post]
func (c *SignController) Submit() {
	var ParamData Sign.SubmitParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.Submit(ParamData))
}

// @Summary 注册签名身份
// @Param	body		body 	Sign.UinParam	true		""
// @Success 200
// @router /Register [post]
func (c *SignController) Register() {
	var ParamData Sign.UinParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.RegisterIdentity(ParamData))
}

// @Summary 取出待发送的回调包
// @Param	body		body 	Sign.SsoPacketsParam	true		"Max 小于等于0时全部取出"
// @Success 200
// @router /SsoPackets [post]
func (c *SignController) SsoPackets() {
	var ParamData Sign.SsoPacketsParam
	if !c.parseBody(&ParamData) {
		return
	}
	c.serve(Sign.SsoPackets(ParamData))
}
