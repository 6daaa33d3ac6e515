package comm

import (
	"encoding/json"
	"fmt"
	"qsigndll/baseinfo"
	"time"

	"github.com/astaxie/beego"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// 签名身份与回调包队列的键前缀
const (
	identityPrefix = "QSIGN:"
	ssoQueuePrefix = "QSIGN:SSO:"
)

func RedisInitialize() *redis.Client {
	dbNum, err := beego.AppConfig.Int("redisdbnum")
	if err != nil {
		log.Errorf("读取redisdbnum配置失败.")
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     beego.AppConfig.String("redislink"), // redis地址
		Password: beego.AppConfig.String("redispass"), // redis密码，没有则留空
		DB:       dbNum,                               // 默认数据库，默认是0
	})

	return RedisClient
}

func identityKey(uin int64) string {
	return fmt.Sprintf("%s%d", identityPrefix, uin)
}

// 保存签名身份, 如果Expiration大于0, 则有限临时缓存, 等于0持久缓存, 小于0无限临时缓存
func CreateSignIdentity(data baseinfo.Identity, Expiration int64) error {
	var ExpTime time.Duration
	// 持久保存的为PERM1:, 临时的保存为TEMP1:, 避免临时键覆盖了持久键
	prefixStr := "PERM1:"
	if Expiration > 0 {
		ExpTime = time.Second * time.Duration(Expiration)
		prefixStr = "TEMP1:"
	} else if Expiration < 0 {
		prefixStr = "TEMP1:"
	}
	JsonData, err := json.Marshal(&data)
	if err != nil {
		return errors.Wrap(err, "序列化签名身份失败")
	}
	return RedisClient.Set(prefixStr+identityKey(data.Uin), string(JsonData), ExpTime).Err()
}

func GetKeyJsonData(Key string) (ret string, err error) {
	// 优先读取持久键值
	val, _ := RedisClient.Get("PERM1:" + Key).Result()
	if val != "" {
		return val, nil
	}
	// 读取临时键值
	val, _ = RedisClient.Get("TEMP1:" + Key).Result()
	if val == "" {
		return ret, errors.New(fmt.Sprintf("[Key:%v]数据不存在", Key))
	}
	return val, nil
}

// GetSignIdentity 读取签名身份, 未设置签名地址时使用配置的 signapiaddr
func GetSignIdentity(uin int64) (*baseinfo.Identity, error) {
	P, err := GetKeyJsonData(identityKey(uin))
	if err != nil {
		return &baseinfo.Identity{}, err
	}
	D := &baseinfo.Identity{}
	err = json.Unmarshal([]byte(P), D)
	if err != nil {
		return &baseinfo.Identity{}, errors.Wrap(err, "签名身份数据损坏")
	}
	if D.SignApiAddr == "" {
		D.SignApiAddr = beego.AppConfig.String("signapiaddr")
	}
	return D, nil
}

func DelSignIdentity(uin int64) error {
	key := identityKey(uin)
	return RedisClient.Del("PERM1:"+key, "TEMP1:"+key).Err()
}

// PushSsoPackets 回调包写入该 uin 的待发送队列
func PushSsoPackets(uin int64, list []interface{}) error {
	if len(list) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(list))
	for _, item := range list {
		b, err := json.Marshal(item)
		if err != nil {
			return errors.Wrap(err, "序列化回调包失败")
		}
		values = append(values, string(b))
	}
	return RedisClient.RPush(fmt.Sprintf("%s%d", ssoQueuePrefix, uin), values...).Err()
}

// PopSsoPackets 取出最多 max 个待发送回调包, max 小于等于0时全部取出
func PopSsoPackets(uin int64, max int64) ([]interface{}, error) {
	key := fmt.Sprintf("%s%d", ssoQueuePrefix, uin)
	var rangeCmd *redis.StringSliceCmd
	_, err := RedisClient.TxPipelined(func(pipe redis.Pipeliner) error {
		if max <= 0 {
			rangeCmd = pipe.LRange(key, 0, -1)
			pipe.Del(key)
		} else {
			rangeCmd = pipe.LRange(key, 0, max-1)
			pipe.LTrim(key, max, -1)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "读取回调包队列失败")
	}
	list := make([]interface{}, 0, len(rangeCmd.Val()))
	for _, v := range rangeCmd.Val() {
		var item interface{}
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			log.Warnf("回调包数据损坏: %v", err)
			continue
		}
		list = append(list, item)
	}
	return list, nil
}
