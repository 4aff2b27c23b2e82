package config

import "github.com/tauraamui/gifreel/pkg/configdef"

type defaultSettingKey uint

const (
	SCALE     defaultSettingKey = 0x0
	LABEL     defaultSettingKey = 0x1
	LABELSIZE defaultSettingKey = 0x2
	LOGLEVEL  defaultSettingKey = 0x3
)

var defaultSettings = map[defaultSettingKey]interface{}{
	SCALE:     1,
	LABEL:     false,
	LABELSIZE: 12.0,
	LOGLEVEL:  "warn",
}

func defaultValues() configdef.Values {
	return configdef.Values{
		Scale:     defaultSettings[SCALE].(int),
		Label:     defaultSettings[LABEL].(bool),
		LabelSize: defaultSettings[LABELSIZE].(float64),
		LogLevel:  defaultSettings[LOGLEVEL].(string),
	}
}
