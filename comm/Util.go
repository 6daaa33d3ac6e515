package comm

import (
	"compress/gzip"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"qsigndll/models"
	"strings"
	"time"

	"github.com/astaxie/beego"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
)

// 设定代理中间件, 如proxyAddr为空则不适用代理
func Socks5Transport(P models.ProxyInfo, timeout time.Duration) (*http.Transport, error) {
	transport := &http.Transport{
		Proxy:                 nil,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		MaxIdleConnsPerHost:   -1,   //连接池禁用缓存
		DisableKeepAlives:     true, //禁用客户端连接缓存到连接池
	}
	if !P.Enabled() {
		return transport, nil
	}
	//设定账号和用户名
	var proxyAuth *proxy.Auth
	if P.ProxyUser != "" && P.ProxyUser != "string" && P.ProxyPassword != "" && P.ProxyPassword != "string" {
		proxyAuth = &proxy.Auth{
			User:     P.ProxyUser,
			Password: P.ProxyPassword,
		}
	}
	dialer, err := proxy.SOCKS5("tcp", P.ProxyIp, proxyAuth, &net.Dialer{
		Timeout: timeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "socks5代理设置失败")
	}
	transport.Dial = dialer.Dial
	return transport, nil
}

// GetSignProxy 读取签名服务的全局代理配置
func GetSignProxy() models.ProxyInfo {
	return models.ProxyInfo{
		ProxyIp:       beego.AppConfig.String("signproxy"),
		ProxyUser:     beego.AppConfig.String("signproxyuser"),
		ProxyPassword: beego.AppConfig.String("signproxypass"),
	}
}

// GenSignApiUA 签名服务请求使用的 UA
func GenSignApiUA(osRelease string) string {
	return fmt.Sprintf("Dalvik/2.1.0 (Linux; U; Android %s; PCRT00 Build/N2G48H)", osRelease)
}

// SignHttpRequest 向签名服务发起请求, GET 参数放入 query, POST 参数以表单提交
func SignHttpRequest(Url string, action string, params url.Values, ua string, timeout time.Duration, P models.ProxyInfo) (*http.Response, error) {
	var req *http.Request
	var err error
	if action == http.MethodPost {
		req, err = http.NewRequest(action, Url, strings.NewReader(params.Encode()))
	} else {
		reqUri, perr := url.Parse(Url)
		if perr != nil {
			return nil, errors.Wrap(perr, "签名api地址错误")
		}
		query := reqUri.Query()
		for k, v := range params {
			query[k] = v
		}
		reqUri.RawQuery = query.Encode()
		req, err = http.NewRequest(action, reqUri.String(), nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "创建请求失败")
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	transport, err := Socks5Transport(P, timeout)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Transport: transport, Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", action, req.URL.Path)
	}
	return resp, nil
}

// SignHttpGetBody 读取响应内容, 兼容gzip
func SignHttpGetBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	if resp.Header.Get("Content-Encoding") == "gzip" {
		bodyReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "gzip解压失败")
		}
		defer bodyReader.Close()
		return ioutil.ReadAll(bodyReader)
	}
	return ioutil.ReadAll(resp.Body)
}

// SignHttpDo 发起请求并返回响应内容
func SignHttpDo(Url string, action string, params url.Values, ua string, timeout time.Duration, P models.ProxyInfo) ([]byte, error) {
	resp, err := SignHttpRequest(Url, action, params, ua, timeout, P)
	if err != nil {
		return nil, err
	}
	body, err := SignHttpGetBody(resp)
	if err != nil {
		return nil, errors.Wrap(err, "读取响应失败")
	}
	return body, nil
}

// ReplaceUrlPath 把签名api地址的 path 替换为 path
func ReplaceUrlPath(addr string, path string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", errors.Wrap(err, "签名api地址错误")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.Errorf("签名api地址错误: %s", addr)
	}
	u.Path = path
	u.RawPath = ""
	return u.String(), nil
}
