package main

import (
	"fmt"
	"qsigndll/comm"
	_ "qsigndll/routers"

	"github.com/astaxie/beego"
	log "github.com/sirupsen/logrus"
)

func main() {
	comm.LogInitialize()
	comm.RedisInitialize()
	_, err := comm.RedisClient.Ping().Result()
	if err != nil {
		panic(fmt.Sprintf("【Redis】连接失败，ERROR：%v", err.Error()))
	}
	if beego.AppConfig.String("signapiaddr") == "" {
		log.Warn("未配置signapiaddr, 未单独设置签名地址的身份将不会请求签名api")
	}

	beego.BConfig.WebConfig.DirectoryIndex = true
	beego.BConfig.WebConfig.StaticDir["/"] = "swagger"

	beego.SetLogFuncCall(false)

	beego.Run()
}
