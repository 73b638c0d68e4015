package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapısal loglama için global zap logger.
// SLog ise formatlı/pratik kullanım için sugared versiyonu.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger global loggerları başlatır. APP_ENV=production ise JSON,
// aksi halde development encoder kullanılır.
func InitLogger() {
	var cfg zap.Config
	if strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		// Logger kurulamazsa uygulama devam edemez.
		panic("zap logger oluşturulamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger bufferlanmış log kayıtlarını flush eder. main içinde defer edilir.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
