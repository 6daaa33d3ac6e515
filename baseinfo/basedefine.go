package baseinfo

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// DefaultOsRelease 未指定系统版本时 UA 使用的 Android 版本
var DefaultOsRelease = string("10")

// HexBytes json 中以小写十六进制字符串表示的字节
type HexBytes []byte

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// DeviceInfo 设备信息
type DeviceInfo struct {
	Guid      HexBytes `json:"guid"`
	AndroidId string   `json:"android_id"`
	QImei36   string   `json:"qimei36"`
	QImei16   string   `json:"qimei16"`
	// Android 系统版本(version.release)
	OsRelease string `json:"os_release"`
}

// GetQImei 优先返回 qimei36, 不存在时退回 qimei16
func (d *DeviceInfo) GetQImei() string {
	if d.QImei36 != "" {
		return d.QImei36
	}
	return d.QImei16
}

// GuidHex guid 的小写十六进制
func (d *DeviceInfo) GuidHex() string {
	return hex.EncodeToString(d.Guid)
}

// ApkInfo 应用版本信息
type ApkInfo struct {
	Ver    string `json:"ver"`
	Qua    string `json:"qua"`
	SdkVer string `json:"sdkver"`
}

// Identity 签名身份, 由外层客户端维护, 签名模块只读
type Identity struct {
	Uin         int64      `json:"uin"`
	Device      DeviceInfo `json:"device"`
	Apk         ApkInfo    `json:"apk"`
	SignApiAddr string     `json:"sign_api_addr"`
}

// UinString uin 的十进制字符串
func (i *Identity) UinString() string {
	return strconv.FormatInt(i.Uin, 10)
}

// GetOsRelease 返回 UA 使用的系统版本
func (i *Identity) GetOsRelease() string {
	if i.Device.OsRelease == "" {
		return DefaultOsRelease
	}
	return i.Device.OsRelease
}
