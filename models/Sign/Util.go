package Sign

import "strings"

func containsNotRegistered(msg string) bool {
	return strings.Contains(msg, NotRegisteredMsg)
}

type SetIdentityParam struct {
	Uin         int64
	Guid        string // hex, 留空自动生成
	AndroidId   string
	QImei36     string
	QImei16     string
	OsRelease   string
	Ver         string
	Qua         string
	SdkVer      string
	SignApiAddr string // 留空使用配置的 signapiaddr
	Expire      int64  // 大于0为临时保存(秒)
}

type UinParam struct {
	Uin int64
}

type EnergyParam struct {
	Uin int64
	Cmd string
}

type EnergyBatchParam struct {
	Uin  int64
	Cmds []string
}

type GetSignParam struct {
	Uin  int64
	Cmd  string
	Seq  uint32
	Body string // hex
}

type SubmitParam struct {
	Uin        int64
	Cmd        string
	CallbackId int64
	Body       string // hex
}

type SsoPacketsParam struct {
	Uin int64
	Max int64
}
