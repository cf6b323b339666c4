// Package backend 是账户服务的进程内实现，供 cmd/backend 对外提供 account.v1.AccountService。
package backend

import (
	"usecase-sync/api/account/v1/accountv1connect"

	"go.uber.org/fx"
)

var Module = fx.Module("backend",
	fx.Provide(
		DefaultStore,
		NewTokenIssuer,
		fx.Annotate(
			NewAccountService,
			fx.As(new(accountv1connect.AccountServiceHandler)),
		),
	),
)
