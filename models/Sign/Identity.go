package Sign

import (
	"encoding/hex"
	"fmt"
	"qsigndll/Algorithm"
	"qsigndll/baseinfo"
	"qsigndll/bts"
	"qsigndll/comm"
	"qsigndll/models"
	"strings"

	"github.com/astaxie/beego"
	"github.com/gogf/guuid"
)

// GetSignClient 读取 uin 对应的签名身份并创建客户端
func GetSignClient(uin int64) (*SignClient, error) {
	D, err := comm.GetSignIdentity(uin)
	if err != nil {
		return nil, err
	}
	return NewQueueSignClient(D, Algorithm.SignPacker{Identity: D}), nil
}

// NewDeviceGuid 生成16字节设备guid
func NewDeviceGuid() []byte {
	guid, _ := hex.DecodeString(strings.ReplaceAll(guuid.New().String(), "-", ""))
	return guid
}

func SetIdentity(Data SetIdentityParam) models.ResponseResult {
	if Data.Uin <= 0 {
		return models.ResponseResult{
			Code:    -8,
			Success: false,
			Message: "uin不能为空",
			Data:    nil,
		}
	}
	var guid []byte
	if Data.Guid == "" || Data.Guid == "string" {
		guid = NewDeviceGuid()
	} else {
		var err error
		guid, err = hex.DecodeString(Data.Guid)
		if err != nil {
			return models.ResponseResult{
				Code:    -8,
				Success: false,
				Message: fmt.Sprintf("guid不是有效的hex：%v", err.Error()),
				Data:    nil,
			}
		}
	}
	D := baseinfo.Identity{
		Uin: Data.Uin,
		Device: baseinfo.DeviceInfo{
			Guid:      guid,
			AndroidId: Data.AndroidId,
			QImei36:   Data.QImei36,
			QImei16:   Data.QImei16,
			OsRelease: Data.OsRelease,
		},
		Apk: baseinfo.ApkInfo{
			Ver:    Data.Ver,
			Qua:    Data.Qua,
			SdkVer: Data.SdkVer,
		},
		SignApiAddr: Data.SignApiAddr,
	}
	// 未指定时使用配置的 identityexpire
	if Data.Expire == 0 {
		Data.Expire = beego.AppConfig.DefaultInt64("identityexpire", 0)
	}
	if err := comm.CreateSignIdentity(D, Data.Expire); err != nil {
		return models.ResponseResult{
			Code:    -8,
			Success: false,
			Message: fmt.Sprintf("保存签名身份失败：%v", err.Error()),
			Data:    nil,
		}
	}
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    D,
	}
}

func GetIdentity(uin int64) models.ResponseResult {
	D, err := comm.GetSignIdentity(uin)
	if err != nil {
		return identityError(err)
	}
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    D,
	}
}

func DelIdentity(uin int64) models.ResponseResult {
	if err := comm.DelSignIdentity(uin); err != nil {
		return identityError(err)
	}
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    nil,
	}
}

// SsoPackets 取出待发送的回调包
func SsoPackets(Data SsoPacketsParam) models.ResponseResult {
	list, err := comm.PopSsoPackets(Data.Uin, Data.Max)
	if err != nil {
		return identityError(err)
	}
	return models.ResponseResult{
		Code:    0,
		Success: true,
		Message: "成功",
		Data:    bts.SsoPacketList(list),
	}
}

func identityError(err error) models.ResponseResult {
	return models.ResponseResult{
		Code:    -8,
		Success: false,
		Message: fmt.Sprintf("异常：%v", err.Error()),
		Data:    nil,
	}
}
