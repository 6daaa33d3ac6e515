package Sign

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    int
		msg     string
		hasData bool
		outcome Outcome
	}{
		{name: "success", body: `{"code":0,"msg":"ok","data":"ab"}`, code: 0, msg: "ok", hasData: true, outcome: OutcomeSuccess},
		{name: "null data", body: `{"code":0,"data":null}`, code: 0, outcome: OutcomeSuccess},
		{name: "unregistered", body: `{"code":1,"msg":"Uin is not registered."}`, code: 1, msg: NotRegisteredMsg, outcome: OutcomeUnregistered},
		{name: "unregistered with prefix", body: `{"code":1,"msg":"[10001] Uin is not registered."}`, code: 1, msg: "[10001] Uin is not registered.", outcome: OutcomeUnregistered},
		{name: "other rejection", body: `{"code":1,"msg":"some other reason"}`, code: 1, msg: "some other reason", outcome: OutcomeFailure},
		{name: "server error", body: `{"code":-10,"msg":"boom"}`, code: -10, msg: "boom", outcome: OutcomeFailure},
		{name: "float zero code", body: `{"code":0.0,"data":"ab"}`, code: 0, hasData: true, outcome: OutcomeSuccess},
		{name: "float unregistered code", body: `{"code":1.0,"msg":"Uin is not registered."}`, code: 1, msg: NotRegisteredMsg, outcome: OutcomeUnregistered},
		{name: "fractional code", body: `{"code":0.5}`, code: -1, outcome: OutcomeFailure},
		{name: "string code", body: `{"code":"0"}`, code: -1, outcome: OutcomeFailure},
		{name: "missing code", body: `{"msg":"??"}`, code: -1, outcome: OutcomeFailure},
		{name: "array body", body: `[1,2]`, code: -1, outcome: OutcomeFailure},
		{name: "not json", body: `Bad Gateway`, code: -1, outcome: OutcomeFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := ParseEnvelope([]byte(tt.body))
			assert.Equal(t, tt.code, env.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, env.Msg)
			}
			assert.Equal(t, tt.hasData, env.Data != nil)
			assert.Equal(t, tt.outcome, env.Outcome())
		})
	}
}

func TestFailureEnvelope(t *testing.T) {
	env := FailureEnvelope(errors.New("dial tcp: connection refused"))
	assert.Equal(t, -1, env.Code)
	assert.Equal(t, OutcomeFailure, env.Outcome())
	assert.JSONEq(t, `{"code":-1,"msg":"dial tcp: connection refused"}`, env.String())
}

func TestEnvelopeString(t *testing.T) {
	env := ParseEnvelope([]byte(`{"code":0,"msg":"","data":{"sign":"ab","n":12}}`))
	assert.JSONEq(t, `{"code":0,"msg":"","data":{"sign":"ab","n":12}}`, env.String())
}

func TestSignFields(t *testing.T) {
	env := ParseEnvelope([]byte(`{"code":0,"data":{"sign":"aa","token":"bb","extra":"cc","requestCallback":[{"cmd":"x"}]}}`))
	fields, err := env.SignFields()
	require.NoError(t, err)
	assert.Equal(t, "aa", fields.Sign)
	assert.Equal(t, "bb", fields.Token)
	assert.Equal(t, "cc", fields.Extra)
	assert.Len(t, fields.Callbacks, 1)

	fields, err = ParseEnvelope([]byte(`{"code":0}`)).SignFields()
	require.NoError(t, err)
	assert.Empty(t, fields.Sign)
	assert.NotNil(t, fields.Callbacks)

	_, err = ParseEnvelope([]byte(`{"code":0,"data":{"sign":"xyz"}}`)).SignFields()
	assert.Error(t, err)

	_, err = ParseEnvelope([]byte(`{"code":0,"data":[]}`)).SignFields()
	assert.True(t, errors.Is(err, ErrUnexpectedData))
}

func TestCallbackListPrefersSsoPacketList(t *testing.T) {
	env := ParseEnvelope([]byte(`{"code":0,"data":{"ssoPacketList":[{"cmd":"a"}],"requestCallback":[{"cmd":"b"},{"cmd":"c"}]}}`))
	list, err := env.CallbackList()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].(map[string]interface{})["cmd"])

	_, err = ParseEnvelope([]byte(`{"code":0,"data":{"ssoPacketList":"nope"}}`)).CallbackList()
	assert.True(t, errors.Is(err, ErrUnexpectedData))

	_, err = ParseEnvelope([]byte(`{"code":0,"data":12}`)).CallbackList()
	assert.True(t, errors.Is(err, ErrUnexpectedData))
}
