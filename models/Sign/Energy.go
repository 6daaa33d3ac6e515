package Sign

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"qsigndll/models"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FetchEnergySign 请求 energy 签名(T544), 失败时返回空签名
func (c *SignClient) FetchEnergySign(cmd string) []byte {
	sign := []byte{}
	if c.Identity.SignApiAddr == "" || c.Identity.Apk.Qua == "" {
		return sign
	}
	params := url.Values{
		"ver":     {c.Identity.Apk.Ver},
		"uin":     {c.Identity.UinString()},
		"data":    {cmd},
		"guid":    {c.Identity.Device.GuidHex()},
		"version": {c.Identity.Apk.SdkVer},
	}
	tag := fmt.Sprintf("getT544 %s", cmd)
	env := c.requestWithRegister(tag, func() *Envelope {
		return c.callSignApi("energy", http.MethodGet, "/energy", params, EnergyTimeout)
	})
	if env.Outcome() != OutcomeSuccess {
		c.reportFailure(tag, env)
		return sign
	}
	b, err := env.SignBytes()
	if err != nil {
		c.reportFailure(fmt.Sprintf("%s %v", tag, err), env)
		return sign
	}
	return b
}

// GetT544 组 T544 包, 没有签名时同样组包
func (c *SignClient) GetT544(cmd string) []byte {
	return c.Packer.GenerateT544Packet(cmd, c.FetchEnergySign(cmd))
}

type EnergyResult struct {
	Cmd    string
	Sign   string // hex
	Packet string // T544 hex
}

func Energy(Data EnergyParam) models.ResponseResult {
	c, err := GetSignClient(Data.Uin)
	if err != nil {
		return identityError(err)
	}
	sign := c.FetchEnergySign(Data.Cmd)
	return models.ResponseResult{
		Code:    0,
		Success: len(sign) > 0,
		Message: "成功",
		Data: EnergyResult{
			Cmd:    Data.Cmd,
			Sign:   hex.EncodeToString(sign),
			Packet: hex.EncodeToString(c.Packer.GenerateT544Packet(Data.Cmd, sign)),
		},
	}
}

// EnergyBatch 并发获取多个 cmd 的 energy 签名
func EnergyBatch(Data EnergyBatchParam) models.ResponseResult {
	c, err := GetSignClient(Data.Uin)
	if err != nil {
		return identityError(err)
	}
	results := make([]EnergyResult, len(Data.Cmds))
	var g errgroup.Group
	g.SetLimit(8)
	for i, cmd := range Data.Cmds {
		i, cmd := i, cmd
		g.Go(func() error {
			sign := c.FetchEnergySign(cmd)
			results[i] = EnergyResult{
				Cmd:    cmd,
				Sign:   hex.EncodeToString(sign),
				Packet: hex.EncodeToString(c.Packer.GenerateT544Packet(cmd, sign)),
			}
			if len(sign) == 0 {
				return errors.Errorf("%s 未获取到签名", cmd)
			}
			return nil
		})
	}
	// 没有签名的 cmd 仍然返回空签名组成的包
	Message := "成功"
	err = g.Wait()
	if err != nil {
		Message = err.Error()
	}
	return models.ResponseResult{
		Code:    0,
		Success: err == nil,
		Message: Message,
		Data:    results,
	}
}
