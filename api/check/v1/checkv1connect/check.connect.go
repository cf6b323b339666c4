// Package checkv1connect 提供 check.v1.CheckService 的 Connect 处理器。
package checkv1connect

import (
	"context"
	"net/http"

	v1 "usecase-sync/api/check/v1"
	"usecase-sync/internal/pkg/jsoncodec"

	"connectrpc.com/connect"
)

const CheckServiceName = "check.v1.CheckService"

const CheckServiceReadyProcedure = "/check.v1.CheckService/Ready"

type CheckServiceHandler interface {
	Ready(context.Context, *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error)
}

func NewCheckServiceHandler(svc CheckServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{jsoncodec.WithCodec()}, opts...)
	ready := connect.NewUnaryHandler(CheckServiceReadyProcedure, svc.Ready, opts...)
	return "/" + CheckServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CheckServiceReadyProcedure:
			ready.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
