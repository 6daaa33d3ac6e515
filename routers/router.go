// @APIVersion
// @Title QSign
// @Description 签名api代理服务
package routers

import (
	"qsigndll/controllers"

	"github.com/astaxie/beego"
	"github.com/astaxie/beego/plugins/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Access-Control-Allow-Origin", "Access-Control-Allow-Headers", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Access-Control-Allow-Origin", "Access-Control-Allow-Headers", "Content-Type"},
		AllowCredentials: true,
	}))

	ns := beego.NewNamespace("/api",
		beego.NSNamespace("/Sign",
			beego.NSInclude(
				&controllers.SignController{},
			),
		),
	)
	beego.AddNamespace(ns)

	if metricsEnabled, _ := beego.AppConfig.Bool("metricsenabled"); metricsEnabled {
		beego.Handler("/metrics", promhttp.Handler())
	}
}
