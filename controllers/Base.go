package controllers

import (
	"encoding/json"
	"fmt"
	"qsigndll/models"

	"github.com/astaxie/beego"
)

type BaseController struct {
	beego.Controller
}

// parseBody 解析请求体, 失败时直接返回错误结果
func (c *BaseController) parseBody(v interface{}) bool {
	err := json.Unmarshal(c.Ctx.Input.RequestBody, v)
	if err != nil {
		Result := models.ResponseResult{
			Code:    -8,
			Success: false,
			Message: fmt.Sprintf("系统异常：%v", err.Error()),
			Data:    nil,
		}
		c.Data["json"] = &Result
		c.ServeJSON()
		return false
	}
	return true
}

func (c *BaseController) serve(result models.ResponseResult) {
	c.Data["json"] = &result
	c.ServeJSON()
}
