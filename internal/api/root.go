package api

import (
	"context"

	"lighter-go/internal/transport"
)

// RootAPI 封装网关根接口。
type RootAPI struct {
	client *transport.Client
}

// NewRootAPI 创建根接口包装。
func NewRootAPI(client *transport.Client) *RootAPI {
	return &RootAPI{client: client}
}

// Status 查询网关运行状态。
func (a *RootAPI) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := a.client.Get(ctx, basePath+"/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Info 查询网关全局参数。
func (a *RootAPI) Info(ctx context.Context) (*InfoResponse, error) {
	var resp InfoResponse
	if err := a.client.Get(ctx, basePath+"/info", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
