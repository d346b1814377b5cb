package api

import (
	"net/url"
	"strconv"
)

// 查询参数小工具：零值不写入，保持与网关的可选参数语义一致。

func setInt64(q url.Values, key string, value int64) {
	q.Set(key, strconv.FormatInt(value, 10))
}

func setOptInt64(q url.Values, key string, value *int64) {
	if value != nil {
		setInt64(q, key, *value)
	}
}

func setPositive(q url.Values, key string, value int64) {
	if value > 0 {
		setInt64(q, key, value)
	}
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
