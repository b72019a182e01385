package config

import "os"

func IsDebug() bool {
	return os.Getenv("OBJECTWIRE_DEBUG") == "1"
}
