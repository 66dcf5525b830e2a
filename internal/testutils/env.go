package testutils

import "os"

// SavedEnv 记录环境变量被覆盖前的状态。
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv 覆盖环境变量，返回旧状态以便恢复。
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv 按记录的状态恢复环境变量。
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}
