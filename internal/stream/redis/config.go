package redis

type StreamConfig struct {
	RedisAddr    string
	Stream       string
	Group        string
	ConsumerName string
}
