package routers

import (
	"github.com/astaxie/beego"
	"github.com/astaxie/beego/context/param"
)

func init() {

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "SetIdentity",
			Router:           `/SetIdentity`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "GetIdentity",
			Router:           `/GetIdentity`,
			AllowHTTPMethods: []string{"get"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "DelIdentity",
			Router:           `/DelIdentity`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "Energy",
			Router:           `/Energy`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "EnergyBatch",
			Router:           `/EnergyBatch`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "GetSign",
			Router:           `/GetSign`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "RequestToken",
			Router:           `/RequestToken`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "Submit",
			Router:           `/Submit`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "Register",
			Router:           `/Register`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

	beego.GlobalControllerRouter["qsigndll/controllers:SignController"] = append(beego.GlobalControllerRouter["qsigndll/controllers:SignController"],
		beego.ControllerComments{
			Method:           "SsoPackets",
			Router:           `/SsoPackets`,
			AllowHTTPMethods: []string{"post"},
			MethodParams:     param.Make(),
			Filters:          nil,
			Params:           nil})

}
