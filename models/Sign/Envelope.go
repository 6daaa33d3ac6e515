package Sign

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/bitly/go-simplejson"
	"github.com/pkg/errors"
)

// NotRegisteredMsg 签名api返回未注册时 msg 包含的内容
const NotRegisteredMsg = "Uin is not registered."

// Outcome 签名api返回结果分类
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeUnregistered
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUnregistered:
		return "unregistered"
	default:
		return "failure"
	}
}

// ErrUnexpectedData data 的结构与接口约定不符
var ErrUnexpectedData = errors.New("unexpected data shape")

// Envelope 签名api响应 {code, msg, data}
type Envelope struct {
	Code int
	Msg  string
	// data 不存在或为 null 时为 nil
	Data *simplejson.Json
}

// FailureEnvelope 网络异常统一转为 code -1
func FailureEnvelope(err error) *Envelope {
	return &Envelope{Code: -1, Msg: err.Error()}
}

// ParseEnvelope 解析响应内容, 无法解析时返回 code -1
func ParseEnvelope(body []byte) *Envelope {
	js, err := simplejson.NewJson(body)
	if err != nil {
		return FailureEnvelope(errors.Wrap(err, "响应不是有效的json"))
	}
	if _, err := js.Map(); err != nil {
		return &Envelope{Code: -1, Msg: "响应不是json对象"}
	}
	// code 可能以 0.0 形式出现, 按数值比较
	code, err := js.Get("code").Float64()
	if err != nil {
		return &Envelope{Code: -1, Msg: "响应缺少code"}
	}
	if code != math.Trunc(code) {
		return &Envelope{Code: -1, Msg: fmt.Sprintf("响应code不是整数: %v", code)}
	}
	env := &Envelope{Code: int(code)}
	env.Msg, _ = js.Get("msg").String()
	if data, ok := js.CheckGet("data"); ok && data.Interface() != nil {
		env.Data = data
	}
	return env
}

// Outcome code 0 成功; code 1 且 msg 为未注册时需要注册; 其余均为失败
func (e *Envelope) Outcome() Outcome {
	switch {
	case e.Code == 0:
		return OutcomeSuccess
	case e.Code == 1 && containsNotRegistered(e.Msg):
		return OutcomeUnregistered
	default:
		return OutcomeFailure
	}
}

func (e *Envelope) String() string {
	m := map[string]interface{}{"code": e.Code, "msg": e.Msg}
	if e.Data != nil {
		m["data"] = e.Data.Interface()
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("{code:%d msg:%s}", e.Code, e.Msg)
	}
	return string(b)
}

// SignBytes energy 接口: data 为 hex 字符串或 {sign}
func (e *Envelope) SignBytes() ([]byte, error) {
	if e.Data == nil {
		return []byte{}, nil
	}
	switch v := e.Data.Interface().(type) {
	case string:
		return decodeHex(v)
	case map[string]interface{}:
		if sign, ok := v["sign"].(string); ok {
			return decodeHex(sign)
		}
		return []byte{}, nil
	default:
		return nil, errors.Wrapf(ErrUnexpectedData, "energy data %T", v)
	}
}

// SignFields 签名接口 data 中的字段
type SignFields struct {
	Sign      string
	Token     string
	Extra     string
	Callbacks []interface{}
}

// SignFields 签名接口: data 为 {sign, token, extra, ssoPacketList|requestCallback}
func (e *Envelope) SignFields() (*SignFields, error) {
	fields := &SignFields{Callbacks: []interface{}{}}
	if e.Data == nil {
		return fields, nil
	}
	m, err := e.Data.Map()
	if err != nil {
		return nil, errors.Wrapf(ErrUnexpectedData, "sign data %T", e.Data.Interface())
	}
	fields.Sign, _ = m["sign"].(string)
	fields.Token, _ = m["token"].(string)
	fields.Extra, _ = m["extra"].(string)
	if fields.Sign != "" {
		if _, err := hex.DecodeString(fields.Sign); err != nil {
			return nil, errors.Wrap(err, "sign 不是有效的hex")
		}
	}
	fields.Callbacks, err = callbackList(e.Data)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// CallbackList request_token/submit 接口: data 为列表或 {ssoPacketList|requestCallback}
func (e *Envelope) CallbackList() ([]interface{}, error) {
	if e.Data == nil {
		return []interface{}{}, nil
	}
	return callbackList(e.Data)
}

// 优先 ssoPacketList, 其次 requestCallback, data 本身是列表时直接使用
func callbackList(data *simplejson.Json) ([]interface{}, error) {
	switch v := data.Interface().(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		for _, key := range []string{"ssoPacketList", "requestCallback"} {
			item, ok := v[key]
			if !ok || item == nil {
				continue
			}
			list, ok := item.([]interface{})
			if !ok {
				return nil, errors.Wrapf(ErrUnexpectedData, "%s %T", key, item)
			}
			return list, nil
		}
		return []interface{}{}, nil
	default:
		return nil, errors.Wrapf(ErrUnexpectedData, "callback data %T", v)
	}
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "sign 不是有效的hex")
	}
	return b, nil
}
