package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Cfg is the process-wide server configuration, loaded once at startup.
var Cfg Config

type Config struct {
	Addr         string
	CurveSamples int
	DBPath       string
	HistorySize  int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("config file not found, using defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	Cfg = Config{
		Addr:         file.Section("server").Key("Addr").MustString(":9000"),
		CurveSamples: file.Section("server").Key("CurveSamples").MustInt(50),
		DBPath:       file.Section("server").Key("DBPath").MustString("sousvide.db"),
		HistorySize:  file.Section("server").Key("HistorySize").MustInt(32),
	}
}
