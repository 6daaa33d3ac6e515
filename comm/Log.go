package comm

import (
	"io"
	"os"

	"github.com/astaxie/beego"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogInitialize 按配置设置日志级别, 配置了 logfile 时同时写入滚动日志文件
func LogInitialize() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := log.ParseLevel(beego.AppConfig.DefaultString("loglevel", "info"))
	if err != nil {
		log.Warnf("loglevel配置错误: %v", err)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	logFile := beego.AppConfig.String("logfile")
	if logFile == "" {
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    beego.AppConfig.DefaultInt("logmaxsize", 100), // MB
		MaxBackups: beego.AppConfig.DefaultInt("logmaxbackups", 7),
		MaxAge:     beego.AppConfig.DefaultInt("logmaxage", 30), // 天
		Compress:   true,
	}))
}
